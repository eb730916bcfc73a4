package domain

import "errors"

// Resolve picks the tool to run.
//
// An override always wins and the detected set is not consulted. Otherwise a single
// detected tool is returned, an empty set fails with ErrNoToolDetected and several
// tools fail with an *AmbiguousToolsError holding every candidate.
func Resolve(detected ToolSet, override Tool) (Tool, error) {
	if override != ToolNone {
		return override, nil
	}

	switch detected.Len() {
	case 0:
		return ToolNone, ErrNoToolDetected
	case 1:
		for t := range detected {
			return t, nil
		}
	}
	return ToolNone, NewAmbiguousToolsError(detected)
}

// Preference is an ordered tie-break list applied to ambiguous detections.
type Preference []Tool

// Break returns the first preferred tool among the candidates of an
// *AmbiguousToolsError. Any other error, or no preferred candidate, is returned as is.
func (p Preference) Break(err error) (Tool, error) {
	var ambiguous *AmbiguousToolsError
	if !errors.As(err, &ambiguous) {
		return ToolNone, err
	}
	for _, preferred := range p {
		for _, candidate := range ambiguous.Candidates {
			if candidate == preferred {
				return candidate, nil
			}
		}
	}
	return ToolNone, err
}
