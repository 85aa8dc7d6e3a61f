package db

import _ "embed"

//go:embed schema.sql
var Schema string

type RelationKind int64

const (
	RELATION_PREREQUISITE RelationKind = iota
	RELATION_COREQUISITE
	RELATION_EXCLUSION
)

func (k RelationKind) String() string {
	switch k {
	case RELATION_PREREQUISITE:
		return "prerequisite"
	case RELATION_COREQUISITE:
		return "corequisite"
	case RELATION_EXCLUSION:
		return "exclusion"
	}
	return "unknown"
}
