package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p SkillPayload) Validate() error {
	if p.SkillID == "" {
		return errors.New("skillId is required")
	}
	if p.Target != nil && !p.Target.Valid() {
		return errors.New("target violates q+r+s=0")
	}
	return nil
}

func (p MovePayload) Validate() error {
	if !p.Target.Valid() {
		return errors.New("target violates q+r+s=0")
	}
	return nil
}

func (c ClientCommand) Validate() error {
	if c.Token == "" {
		return errors.New("token is required")
	}
	if c.Action == "" {
		return errors.New("action is required")
	}
	return nil
}
