package usecase

import (
	"context"
	"errors"
	"testing"

	"hiring-intel/internal/domain/candidate"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/repository"
	"hiring-intel/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCandidates_ListSkills(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCandidateRepository(ctrl)

	userID := uuid.New()
	profile := candidate.Profile{ID: uuid.New(), UserID: userID, Name: "Sari"}
	skills := []candidate.SkillWithHistory{{
		Skill:   candidate.Skill{ID: uuid.New(), CandidateID: profile.ID, Name: "Go", Score: 81},
		History: []candidate.HistoryPoint{{Month: "2024-01", Score: 70}, {Month: "2024-02", Score: 75}},
	}}

	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(profile, nil)
	repo.EXPECT().ListSkillsWithHistory(gomock.Any(), profile.ID).Return(skills, nil)

	got, err := NewCandidateUsecase(repo).ListSkills(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, skills, got)
}

func TestCandidates_MissingProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCandidateRepository(ctrl)
	userID := uuid.New()
	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(candidate.Profile{}, repository.ErrCandidateNotFound).Times(2)

	uc := NewCandidateUsecase(repo)
	_, err := uc.GetCandidate(context.Background(), userID)
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	_, err = uc.ListSkills(context.Background(), userID)
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidates_ListCandidates_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCandidateRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewCandidateUsecase(repo).ListCandidates(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCandidates_ImprovementPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCandidateRepository(ctrl)

	userID := uuid.New()
	profile := candidate.Profile{ID: uuid.New(), UserID: userID, RiskScore: scoring.RiskMedium}
	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(profile, nil).Times(2)
	repo.EXPECT().ListSkillsWithHistory(gomock.Any(), profile.ID).Return([]candidate.SkillWithHistory{{
		Skill: candidate.Skill{ID: uuid.New(), Name: "Go", Score: 91},
	}}, nil)
	repo.EXPECT().ListSkillsWithHistory(gomock.Any(), profile.ID).Return(nil, errors.New("boom"))

	uc := NewCandidateUsecase(repo)
	plan, err := uc.ImprovementPlan(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, candidate.PriorityLow, plan[0].Priority)
	assert.Equal(t, "Leverage Go strength", plan[0].Title)

	_, err = uc.ImprovementPlan(context.Background(), userID)
	assert.ErrorIs(t, err, ErrInternal)
}
