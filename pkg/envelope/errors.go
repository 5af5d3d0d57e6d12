package envelope

import "fmt"

// InvalidParameterError reports an input parameter outside its valid range.
type InvalidParameterError struct {
	Param   string
	Message string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Message)
}

// InvalidGeometryError reports a parameter combination whose geometry cannot
// be built, such as a garage that does not fit the solved footprint.
type InvalidGeometryError struct {
	Message string
}

func (e InvalidGeometryError) Error() string {
	return "invalid geometry: " + e.Message
}

// UnsupportedRoofConfigurationError reports a roof type that cannot be
// combined with the requested garage or plan shape.
type UnsupportedRoofConfigurationError struct {
	Message string
}

func (e UnsupportedRoofConfigurationError) Error() string {
	return "unsupported roof configuration: " + e.Message
}

// StartingStateError reports generation into an envelope that already holds
// zones or spaces.
type StartingStateError struct {
	Zones  int
	Spaces int
}

func (e StartingStateError) Error() string {
	return fmt.Sprintf("starting envelope is not empty: %d zones, %d spaces", e.Zones, e.Spaces)
}
