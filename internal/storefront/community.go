package storefront

import (
	"context"
	"errors"
	"strings"

	"github.com/cofund-lab/backend/internal/client"
	"github.com/cofund-lab/backend/internal/model"
)

var (
	ErrNotAllowed   = errors.New("viewer is not allowed to do that")
	ErrBlankContent = errors.New("content must not be blank")
)

// Entry is one ask with its optional answer, decorated with what the current
// viewer may do to it. The flags are derived once at load time, so rendering
// never re-checks identity.
type Entry struct {
	Ask    model.Ask
	Answer *model.Answer

	// IsMine is true when the viewer wrote the ask.
	IsMine bool
	// IsAuthor is true when the viewer owns the project.
	IsAuthor bool
}

// CanEditAsk: only the person who asked may rewrite the question.
func (e Entry) CanEditAsk() bool {
	return e.IsMine
}

// CanDeleteAsk: the asker or the project owner may remove the thread.
func (e Entry) CanDeleteAsk() bool {
	return e.IsMine || e.IsAuthor
}

// CanAnswer: the owner answers, and each ask takes exactly one answer.
func (e Entry) CanAnswer() bool {
	return e.IsAuthor && e.Answer == nil
}

// CanEditAnswer and CanDeleteAnswer both belong to the owner alone.
func (e Entry) CanEditAnswer() bool {
	return e.IsAuthor && e.Answer != nil
}

func (e Entry) CanDeleteAnswer() bool {
	return e.IsAuthor && e.Answer != nil
}

// CommunityThread is the ask/answer board on a project page. The viewer's
// permissions gate every mutation locally before the request goes out; the
// service enforces the same rules again on its side.
type CommunityThread struct {
	caller    client.StoreCaller
	projectID string
	viewer    ViewerContext

	entries []Entry
}

func NewCommunityThread(
	caller client.StoreCaller, projectID string, viewer ViewerContext,
) *CommunityThread {
	return &CommunityThread{caller: caller, projectID: projectID, viewer: viewer}
}

func (t *CommunityThread) Entries() []Entry {
	return t.entries
}

// Load fetches the thread and stamps every entry with the viewer's rights.
func (t *CommunityThread) Load(ctx context.Context) error {
	raw, err := t.caller.GetCommunity(ctx, t.projectID)
	if err != nil {
		return err
	}

	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, Entry{
			Ask:      e.Ask,
			Answer:   e.Answer,
			IsMine:   t.viewer.ViewerID != "" && t.viewer.ViewerID == e.Ask.AuthorID,
			IsAuthor: t.viewer.IsOwner,
		})
	}

	t.entries = entries
	return nil
}

func (t *CommunityThread) find(askID int64) (Entry, bool) {
	for _, entry := range t.entries {
		if entry.Ask.ID == askID {
			return entry, true
		}
	}
	return Entry{}, false
}

// Ask posts a new question. Any signed-in viewer may ask.
func (t *CommunityThread) Ask(ctx context.Context, content string) error {
	if !t.viewer.IsAuthenticated() {
		return ErrNotAllowed
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return ErrBlankContent
	}

	if _, err := t.caller.CreateAsk(ctx, t.projectID, content); err != nil {
		return err
	}

	return t.Load(ctx)
}

// Answer posts the owner's answer to one ask.
func (t *CommunityThread) Answer(ctx context.Context, askID int64, content string) error {
	entry, ok := t.find(askID)
	if !ok || !entry.CanAnswer() {
		return ErrNotAllowed
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return ErrBlankContent
	}

	if _, err := t.caller.CreateAnswer(ctx, askID, content); err != nil {
		return err
	}

	return t.Load(ctx)
}

// Edit rewrites an ask or an answer, whichever the reference names.
func (t *CommunityThread) Edit(ctx context.Context, ref client.EntryRef, content string) error {
	if !t.allowed(ref, false) {
		return ErrNotAllowed
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return ErrBlankContent
	}

	if err := t.caller.UpdateEntry(ctx, ref, content); err != nil {
		return err
	}

	return t.Load(ctx)
}

// Delete removes an ask (with its answer) or just the answer.
func (t *CommunityThread) Delete(ctx context.Context, ref client.EntryRef) error {
	if !t.allowed(ref, true) {
		return ErrNotAllowed
	}

	if err := t.caller.DeleteEntry(ctx, ref); err != nil {
		return err
	}

	return t.Load(ctx)
}

func (t *CommunityThread) allowed(ref client.EntryRef, deleting bool) bool {
	switch ref.Kind {
	case client.KindAsk:
		entry, ok := t.find(ref.ID)
		if !ok {
			return false
		}
		if deleting {
			return entry.CanDeleteAsk()
		}
		return entry.CanEditAsk()

	case client.KindAnswer:
		for _, entry := range t.entries {
			if entry.Answer != nil && entry.Answer.ID == ref.ID {
				if deleting {
					return entry.CanDeleteAnswer()
				}
				return entry.CanEditAnswer()
			}
		}
		return false

	default:
		return false
	}
}
