package node

// Interner is the subset of intern.Table's behavior the node package needs
// in order to build derived nodes without importing the intern package
// (which itself must import node for Store and ID). Concretely implemented
// by *intern.Table.
type Interner interface {
	// Get returns the unique canonical node for the given children,
	// constructing and registering one if it does not already exist.
	Get(nw, ne, sw, se ID) (ID, error)
}
