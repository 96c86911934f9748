package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"snapgram/internal/auth"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
	profiles "snapgram/internal/repository/port"
)

// conversationListLimit caps the conversation list; callers needing more are
// out of scope.
const conversationListLimit = 50

// ListConversationsUseCase lists the current user's conversations ordered by
// lastMessageTimestamp descending, each enriched with the counterpart's
// public profile.
type ListConversationsUseCase struct {
	Repo     repository.ConversationRepository
	Profiles profiles.ProfileRepository
}

func NewListConversationsUseCase(repo repository.ConversationRepository, p profiles.ProfileRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo, Profiles: p}
}

// Execute returns the enriched conversations plus the total match count.
// A failed counterpart profile fetch leaves OtherUser nil on that entry
// instead of failing the whole list.
func (uc *ListConversationsUseCase) Execute(ctx context.Context) ([]messaging.Conversation, int, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, 0, err
	}

	convs, total, err := uc.Repo.ListByParticipant(ctx, principal.ID, conversationListLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Counterpart profiles are independent reads; fetch them jointly.
	var wg sync.WaitGroup
	for i := range convs {
		otherID := convs[i].Counterpart(principal.ID)
		if otherID == "" {
			continue
		}
		wg.Add(1)
		go func(i int, otherID string) {
			defer wg.Done()
			profile, err := uc.Profiles.GetByID(ctx, otherID)
			if err != nil {
				log.Warn().
					Str("conversation_id", convs[i].ID).
					Str("user_id", otherID).
					Err(err).
					Msg("counterpart profile fetch failed, leaving otherUser unset")
				return
			}
			convs[i].OtherUser = &messaging.UserSummary{
				ID:       profile.ID,
				Name:     profile.Name,
				Username: profile.Username,
				ImageURL: profile.ImageURL,
			}
		}(i, otherID)
	}
	wg.Wait()

	return convs, total, nil
}
