package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type HomeworkStatus string

const (
	HomeworkStatusCreated HomeworkStatus = "created"
	HomeworkStatusActive  HomeworkStatus = "active"
	HomeworkStatusClosed  HomeworkStatus = "closed"
)

type SolutionStatus string

const (
	SolutionStatusDraft     SolutionStatus = "draft"
	SolutionStatusSubmitted SolutionStatus = "submitted"
	SolutionStatusReturned  SolutionStatus = "returned"
	SolutionStatusGraded    SolutionStatus = "graded"
)

// solutionTransitions is the complete solution state machine.
var solutionTransitions = map[SolutionStatus][]SolutionStatus{
	SolutionStatusDraft:     {SolutionStatusSubmitted},
	SolutionStatusSubmitted: {SolutionStatusReturned, SolutionStatusGraded},
	SolutionStatusReturned:  {SolutionStatusGraded},
	SolutionStatusGraded:    {SolutionStatusReturned},
}

func (s HomeworkStatus) IsValid() bool {
	switch s {
	case HomeworkStatusCreated, HomeworkStatusActive, HomeworkStatusClosed:
		return true
	default:
		return false
	}
}

// IsPublished reports whether a homework in this status has been made visible
// to students at some point.
func (s HomeworkStatus) IsPublished() bool {
	return s == HomeworkStatusActive || s == HomeworkStatusClosed
}

func ParseHomeworkStatus(s string) (HomeworkStatus, error) {
	status := HomeworkStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown homework status %q", s)
	}
	return status, nil
}

func (s *HomeworkStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseHomeworkStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (s *HomeworkStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	status, err := ParseHomeworkStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (s HomeworkStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown homework status %q", string(s))
	}
	return string(s), nil
}

func (s SolutionStatus) IsValid() bool {
	_, ok := solutionTransitions[s]
	return ok
}

// CanTransitionTo reports whether the state machine has an edge from s to next.
func (s SolutionStatus) CanTransitionTo(next SolutionStatus) bool {
	for _, allowed := range solutionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseSolutionStatus(s string) (SolutionStatus, error) {
	status := SolutionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown solution status %q", s)
	}
	return status, nil
}

func (s *SolutionStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseSolutionStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (s *SolutionStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	status, err := ParseSolutionStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (s SolutionStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown solution status %q", string(s))
	}
	return string(s), nil
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case HomeworkStatus:
		return string(v), nil
	case SolutionStatus:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("status cannot be null")
	default:
		return "", fmt.Errorf("cannot scan %T into status", src)
	}
}
