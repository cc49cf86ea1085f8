package component

// TowerKind classifies what a tower stands for.
type TowerKind int

const (
	TowerFile TowerKind = iota
	TowerDirectory
	TowerAccessDenied
)

func (k TowerKind) String() string {
	switch k {
	case TowerFile:
		return "file"
	case TowerDirectory:
		return "directory"
	case TowerAccessDenied:
		return "access_denied"
	default:
		return "unknown"
	}
}

// Tower is a labeled entry of the current location.
type Tower struct {
	Label string
	Kind  TowerKind
	// Path is the filesystem location the tower stands for; empty for markers.
	Path string
	// Order is the creation index within one population.
	Order int
}

var TowerComponent = NewComponent[Tower]()

// Selected tags the one tower the pointer last chose.
type Selected struct{}

var SelectedComponent = NewComponent[Selected]()
