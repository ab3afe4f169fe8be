package validator

import (
	"fmt"
	"strings"
)

const (
	maxGroupNameLength   = 64
	maxDescriptionLength = 256
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateCreateGroup checks the group-creation request shape and returns the
// deduplicated member set including the creator.
func (v *Validator) ValidateCreateGroup(name string, members []string, creatorID string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("group name is required")
	}

	if len([]rune(name)) > maxGroupNameLength {
		return nil, fmt.Errorf("group name exceeds maximum length of %d characters", maxGroupNameLength)
	}

	uniqueMembers := make(map[string]struct{})
	for _, memberID := range members {
		if strings.TrimSpace(memberID) != "" && memberID != creatorID {
			uniqueMembers[memberID] = struct{}{}
		}
	}

	if len(uniqueMembers) < 1 {
		return nil, fmt.Errorf("group requires at least one member besides the creator")
	}

	allMembers := []string{creatorID}
	for _, memberID := range members {
		if _, ok := uniqueMembers[memberID]; ok {
			allMembers = append(allMembers, memberID)
			delete(uniqueMembers, memberID)
		}
	}

	return allMembers, nil
}

// SanitizeGroupName trims the name and collapses inner whitespace runs.
func (v *Validator) SanitizeGroupName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func (v *Validator) SanitizeDescription(description string) string {
	description = strings.TrimSpace(description)
	if len([]rune(description)) > maxDescriptionLength {
		description = string([]rune(description)[:maxDescriptionLength])
	}
	return description
}
