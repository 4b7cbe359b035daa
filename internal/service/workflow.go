package service

import "github.com/Mouhib912/Event-Management-Platform/internal/model"

// Stand approval state machine. Validations are recorded unconditionally;
// only the transitions below change the status. A finance validation on a
// draft parks the stand in validated_finance, and a later logistics
// validation does not move it from there.

func statusAfterLogistics(current string) string {
	if current == model.StandDraft {
		return model.StandValidatedLogistics
	}
	return current
}

func statusAfterFinance(current string) string {
	switch current {
	case model.StandValidatedLogistics:
		return model.StandApproved
	case model.StandDraft:
		return model.StandValidatedFinance
	}
	return current
}
