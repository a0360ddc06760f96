package mapproj

import "fmt"

// Error is a construction-time projection parameter error. Code follows the
// classical PROJ error-code convention so callers ported from other PROJ
// frontends can match on it.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("projection error %d: %s", e.Code, e.Msg)
}

var (
	errProjNotNamed   = &Error{Code: -4, Msg: "projection not named"}
	errUnknownProj    = &Error{Code: -5, Msg: "unknown projection id"}
	errEccentricity   = &Error{Code: -6, Msg: "effective eccentricity = 1."}
	errUnknownEllps   = &Error{Code: -9, Msg: "unknown elliptical parameter name"}
	errConicParallels = &Error{Code: -21, Msg: "conic lat_1 = -lat_2"}
)
