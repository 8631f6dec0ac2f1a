package service

import (
	"context"

	"github.com/DjordjeVuckovic/bfhl/internal/classifier"
	"github.com/DjordjeVuckovic/bfhl/internal/dto"
	"github.com/DjordjeVuckovic/bfhl/internal/identity"
)

// Local classifies in-process and stamps the configured identity.
type Local struct {
	id identity.Identity
}

func NewLocal(id identity.Identity) *Local {
	return &Local{id: id}
}

func (l *Local) Classify(_ context.Context, tokens []string) (*dto.ClassifyResponse, error) {
	res := classifier.Classify(tokens)

	return &dto.ClassifyResponse{
		IsSuccess:       true,
		UserID:          l.id.UserID,
		Email:           l.id.Email,
		RollNumber:      l.id.RollNumber,
		Numbers:         res.Numbers,
		Alphabets:       res.Alphabets,
		HighestAlphabet: res.HighestAlphabet,
	}, nil
}
