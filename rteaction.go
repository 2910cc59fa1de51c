package geopack

// RteAction is a navigation instruction attached to route waypoints,
// stored under AttrRteAction.
type RteAction int

// Known navigation actions.
const (
	RteActionUndefined        RteAction = -1
	RteActionNone             RteAction = 0
	RteActionContinueStraight RteAction = 1
	RteActionLeftSlight       RteAction = 2
	RteActionLeft             RteAction = 3
	RteActionLeftSharp        RteAction = 4
	RteActionRightSlight      RteAction = 5
	RteActionRight            RteAction = 6
	RteActionRightSharp       RteAction = 7
	RteActionUTurn            RteAction = 8
	RteActionMerge            RteAction = 12
	RteActionArrive           RteAction = 24
	RteActionRoundaboutExit1  RteAction = 27
	RteActionRoundaboutExit2  RteAction = 28
	RteActionRoundaboutExit3  RteAction = 29
	RteActionRoundaboutExit4  RteAction = 30
	RteActionRoundaboutExit5  RteAction = 31
	RteActionRoundaboutExit6  RteAction = 32
	RteActionRoundaboutExit7  RteAction = 33
	RteActionRoundaboutExit8  RteAction = 34
)

var rteActionNames = map[RteAction]string{
	RteActionUndefined:        "undefined",
	RteActionNone:             "none",
	RteActionContinueStraight: "continue straight",
	RteActionLeftSlight:       "slight left",
	RteActionLeft:             "left",
	RteActionLeftSharp:        "sharp left",
	RteActionRightSlight:      "slight right",
	RteActionRight:            "right",
	RteActionRightSharp:       "sharp right",
	RteActionUTurn:            "u-turn",
	RteActionMerge:            "merge",
	RteActionArrive:           "arrive",
	RteActionRoundaboutExit1:  "roundabout, exit 1",
	RteActionRoundaboutExit2:  "roundabout, exit 2",
	RteActionRoundaboutExit3:  "roundabout, exit 3",
	RteActionRoundaboutExit4:  "roundabout, exit 4",
	RteActionRoundaboutExit5:  "roundabout, exit 5",
	RteActionRoundaboutExit6:  "roundabout, exit 6",
	RteActionRoundaboutExit7:  "roundabout, exit 7",
	RteActionRoundaboutExit8:  "roundabout, exit 8",
}

// RteActionByID maps a numeric action code to a known RteAction,
// defaulting to RteActionUndefined. Blobs written by newer schemas may
// carry codes this version does not know.
func RteActionByID(id int) RteAction {
	if _, ok := rteActionNames[RteAction(id)]; ok {
		return RteAction(id)
	}
	return RteActionUndefined
}

func (a RteAction) String() string {
	if s, ok := rteActionNames[a]; ok {
		return s
	}
	return "undefined"
}
