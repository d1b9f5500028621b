package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCompetitionServiceTest(t *testing.T) (*CompetitionService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:competition_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Competition{},
		&models.CompetitionParticipant{},
		&models.CompetitionVote{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewCompetitionService(repository.NewCompetitionRepository(db)), db
}

func TestCompetitionEntryMovesCounter(t *testing.T) {
	svc, _ := setupCompetitionServiceTest(t)

	comp, err := svc.Create(CompetitionCreateInput{Title: "Talent Show", MaxEntries: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Awa"}); err != nil {
		t.Fatalf("add participant failed: %v", err)
	}
	if _, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Bakary"}); err != nil {
		t.Fatalf("add second participant failed: %v", err)
	}

	stored, participants, err := svc.GetByID(comp.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.CurrentEntries != 2 || len(participants) != 2 {
		t.Fatalf("entry counter out of sync: %d entries, %d participants", stored.CurrentEntries, len(participants))
	}

	if _, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Cheick"}); !errors.Is(err, ErrCompetitionClosed) {
		t.Fatalf("expected ErrCompetitionClosed past max entries, got: %v", err)
	}
}

func TestCompetitionVoteOncePerVoter(t *testing.T) {
	svc, _ := setupCompetitionServiceTest(t)

	comp, err := svc.Create(CompetitionCreateInput{Title: "Photo Contest"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	first, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Awa"})
	if err != nil {
		t.Fatalf("add participant failed: %v", err)
	}
	second, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Bakary"})
	if err != nil {
		t.Fatalf("add participant failed: %v", err)
	}

	voted, err := svc.Vote(comp.ID, first.ID, 10)
	if err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if voted.VoteCount != 1 {
		t.Fatalf("vote count not incremented: %d", voted.VoteCount)
	}

	if _, err := svc.Vote(comp.ID, second.ID, 10); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted for second vote, got: %v", err)
	}
	if _, err := svc.Vote(comp.ID, first.ID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for anonymous vote, got: %v", err)
	}

	if _, err := svc.Vote(comp.ID, second.ID, 11); err != nil {
		t.Fatalf("different voter should pass: %v", err)
	}
}

func TestCompetitionVoteClosedCompetition(t *testing.T) {
	svc, db := setupCompetitionServiceTest(t)

	comp, err := svc.Create(CompetitionCreateInput{Title: "Ended"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	participant, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Awa"})
	if err != nil {
		t.Fatalf("add participant failed: %v", err)
	}
	if err := db.Model(&models.Competition{}).Where("id = ?", comp.ID).
		Update("status", models.CompetitionCompleted).Error; err != nil {
		t.Fatalf("close competition failed: %v", err)
	}

	if _, err := svc.Vote(comp.ID, participant.ID, 5); !errors.Is(err, ErrCompetitionClosed) {
		t.Fatalf("expected ErrCompetitionClosed, got: %v", err)
	}
	if _, err := svc.AddParticipant(comp.ID, ParticipantInput{Name: "Late"}); !errors.Is(err, ErrCompetitionClosed) {
		t.Fatalf("expected ErrCompetitionClosed for late entry, got: %v", err)
	}
}
