package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"snapgram/internal/auth"
	store "snapgram/internal/infrastructure/store/port"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
)

// CreateConversationInput carries the requested participants. The caller's
// own identifier is merged in before the arity check, so passing just the
// counterpart is enough.
type CreateConversationInput struct {
	ParticipantIDs []string
}

// CreateConversationUseCase opens a 1:1 conversation or returns the existing
// one for the same unordered pair (the dedup guarantee).
// One class per use case (own file)
type CreateConversationUseCase struct {
	Repo repository.ConversationRepository
}

func NewCreateConversationUseCase(repo repository.ConversationRepository) *CreateConversationUseCase {
	return &CreateConversationUseCase{Repo: repo}
}

// Execute looks up the canonical participants string and only inserts when no
// conversation exists. A conflicting concurrent insert is resolved by
// fetching the winner, so two racing callers converge on one conversation.
func (uc *CreateConversationUseCase) Execute(ctx context.Context, in CreateConversationInput) (*messaging.Conversation, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	participants := make([]string, 0, len(in.ParticipantIDs)+1)
	for _, id := range append(append([]string(nil), in.ParticipantIDs...), principal.ID) {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		participants = append(participants, id)
	}
	if len(participants) != 2 {
		return nil, messaging.ErrInvalidArity
	}

	canonical := messaging.EncodeParticipants(participants)

	existing, err := uc.Repo.FindByParticipants(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		return existing, nil
	}

	conv := messaging.Conversation{
		ID:                   uuid.NewString(),
		Participants:         messaging.DecodeParticipants(canonical),
		LastMessage:          "",
		LastMessageTimestamp: time.Now().UTC(),
	}
	created, err := uc.Repo.Create(ctx, conv)
	if errors.Is(err, store.ErrConflict) {
		// Lost the check-then-insert race; the unique constraint on the
		// canonical participants string makes the winner authoritative.
		winner, ferr := uc.Repo.FindByParticipants(ctx, canonical)
		if ferr != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, ferr)
		}
		if winner == nil {
			return nil, fmt.Errorf("%w: conflict without winner for %s", ErrPersistence, canonical)
		}
		return winner, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &created, nil
}
