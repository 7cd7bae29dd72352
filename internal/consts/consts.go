package consts

const (
	GroundNode = 0  // node id reserved for ground nets
	Unassigned = -1 // node id before resolution has run
)
