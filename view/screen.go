package view

// Screen is a host screen that may have another screen presented over it
type Screen interface {
	Presented() Screen
}

// maxDepth guards against presentation cycles
const maxDepth = 64

// TopMost follows presented screens from root and returns the last one.
// It returns nil for a nil root.
func TopMost(root Screen) Screen {
	if root == nil {
		return nil
	}

	top := root
	for i := 0; i < maxDepth; i++ {
		next := top.Presented()
		if next == nil {
			break
		}
		top = next
	}
	return top
}
