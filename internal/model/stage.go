package model

// Stage is the user's life-stage segment
type Stage string

const (
	StageStudent     Stage = "student"
	StageEarlyCareer Stage = "early_career"
	StageRetiree     Stage = "retiree"
	StageGeneral     Stage = "general"
)

// Stages lists every known stage in display order
var Stages = []Stage{StageStudent, StageEarlyCareer, StageRetiree, StageGeneral}

// Valid reports whether s is one of the known stages
func (s Stage) Valid() bool {
	switch s {
	case StageStudent, StageEarlyCareer, StageRetiree, StageGeneral:
		return true
	}
	return false
}

// OrGeneral returns s, or StageGeneral when s is empty or unknown
func (s Stage) OrGeneral() Stage {
	if s.Valid() {
		return s
	}
	return StageGeneral
}
