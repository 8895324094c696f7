package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cofund-lab/backend/internal/client"
	"github.com/cofund-lab/backend/internal/model"
)

func communityFixture() []model.CommunityEntry {
	answer := model.Answer{ID: 20, Content: "Yes."}
	return []model.CommunityEntry{
		{Ask: model.Ask{ID: 1, AuthorID: "visitor", Content: "Ships worldwide?"}, Answer: &answer},
		{Ask: model.Ask{ID: 2, AuthorID: "other", Content: "Any discounts?"}},
	}
}

func loadThread(t *testing.T, caller *fakeCaller, viewer ViewerContext) *CommunityThread {
	t.Helper()
	thread := NewCommunityThread(caller, "p1", viewer)
	require.NoError(t, thread.Load(context.Background()))
	return thread
}

func TestCommunityThread_flagsForVisitor(t *testing.T) {
	caller := &fakeCaller{
		GetCommunityFunc: func(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
			return communityFixture(), nil
		},
	}

	thread := loadThread(t, caller, NewViewerContext("visitor", "owner"))
	entries := thread.Entries()
	require.Len(t, entries, 2)

	mine, other := entries[0], entries[1]
	require.True(t, mine.IsMine)
	require.True(t, mine.CanEditAsk())
	require.True(t, mine.CanDeleteAsk())
	require.False(t, mine.CanAnswer())
	require.False(t, mine.CanEditAnswer())

	require.False(t, other.IsMine)
	require.False(t, other.CanEditAsk())
	require.False(t, other.CanDeleteAsk())
	require.False(t, other.CanAnswer())
}

func TestCommunityThread_flagsForOwner(t *testing.T) {
	caller := &fakeCaller{
		GetCommunityFunc: func(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
			return communityFixture(), nil
		},
	}

	thread := loadThread(t, caller, NewViewerContext("owner", "owner"))
	entries := thread.Entries()

	answered, unanswered := entries[0], entries[1]
	require.False(t, answered.CanEditAsk())
	require.True(t, answered.CanDeleteAsk())
	require.False(t, answered.CanAnswer())
	require.True(t, answered.CanEditAnswer())
	require.True(t, answered.CanDeleteAnswer())

	require.True(t, unanswered.CanAnswer())
	require.False(t, unanswered.CanEditAnswer())
}

func TestCommunityThread_anonymousCannotAsk(t *testing.T) {
	caller := &fakeCaller{
		GetCommunityFunc: func(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
			return communityFixture(), nil
		},
	}

	thread := loadThread(t, caller, NewViewerContext("", "owner"))
	require.ErrorIs(t,
		thread.Ask(context.Background(), "can I pay later?"), ErrNotAllowed)
}

func TestCommunityThread_answerGatedLocally(t *testing.T) {
	requested := false
	caller := &fakeCaller{
		GetCommunityFunc: func(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
			return communityFixture(), nil
		},
		CreateAnswerFunc: func(ctx context.Context, askID int64, content string) (*model.Answer, error) {
			requested = true
			return &model.Answer{ID: 21, Content: content}, nil
		},
	}

	// A non-owner never reaches the service.
	visitor := loadThread(t, caller, NewViewerContext("visitor", "owner"))
	require.ErrorIs(t, visitor.Answer(context.Background(), 2, "no idea"), ErrNotAllowed)
	require.False(t, requested)

	// The owner cannot answer an already answered ask.
	owner := loadThread(t, caller, NewViewerContext("owner", "owner"))
	require.ErrorIs(t, owner.Answer(context.Background(), 1, "again"), ErrNotAllowed)
	require.False(t, requested)

	require.NoError(t, owner.Answer(context.Background(), 2, "Only early birds."))
	require.True(t, requested)
}

func TestCommunityThread_editDispatchesByKind(t *testing.T) {
	var gotRef client.EntryRef
	caller := &fakeCaller{
		GetCommunityFunc: func(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
			return communityFixture(), nil
		},
		UpdateEntryFunc: func(ctx context.Context, ref client.EntryRef, content string) error {
			gotRef = ref
			return nil
		},
	}

	visitor := loadThread(t, caller, NewViewerContext("visitor", "owner"))
	require.NoError(t, visitor.Edit(context.Background(),
		client.EntryRef{Kind: client.KindAsk, ID: 1}, "Ships to Asia?"))
	require.Equal(t, client.KindAsk, gotRef.Kind)

	owner := loadThread(t, caller, NewViewerContext("owner", "owner"))
	require.NoError(t, owner.Edit(context.Background(),
		client.EntryRef{Kind: client.KindAnswer, ID: 20}, "Yes, everywhere."))
	require.Equal(t, client.KindAnswer, gotRef.Kind)

	// A visitor editing the owner's answer is stopped before any request.
	require.ErrorIs(t, visitor.Edit(context.Background(),
		client.EntryRef{Kind: client.KindAnswer, ID: 20}, "hijack"), ErrNotAllowed)

	// Unknown discriminators never pass the gate.
	require.ErrorIs(t, visitor.Edit(context.Background(),
		client.EntryRef{Kind: client.EntryKind(99), ID: 1}, "x"), ErrNotAllowed)
}

func TestCommunityThread_blankContentRejected(t *testing.T) {
	caller := &fakeCaller{
		GetCommunityFunc: func(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
			return communityFixture(), nil
		},
	}

	thread := loadThread(t, caller, NewViewerContext("visitor", "owner"))
	require.ErrorIs(t, thread.Ask(context.Background(), "   "), ErrBlankContent)
	require.ErrorIs(t, thread.Edit(context.Background(),
		client.EntryRef{Kind: client.KindAsk, ID: 1}, "\t\n"), ErrBlankContent)
}
