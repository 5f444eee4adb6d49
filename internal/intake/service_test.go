package intake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
)

type recordingNotifier struct {
	channels []model.NotificationChannel
}

func (n *recordingNotifier) Send(ctx context.Context, channel model.NotificationChannel, content string) error {
	n.channels = append(n.channels, channel)
	return nil
}

type recordingArchive struct {
	handoffs []*model.HandoffPackage
	turns    []service.TurnLogEntry
}

func (a *recordingArchive) SaveHandoff(ctx context.Context, pkg *model.HandoffPackage) error {
	a.handoffs = append(a.handoffs, pkg)
	return nil
}

func (a *recordingArchive) LogTurn(ctx context.Context, entry service.TurnLogEntry) error {
	a.turns = append(a.turns, entry)
	return nil
}

func (a *recordingArchive) Close() error { return nil }

func TestCreateSession_Idempotent(t *testing.T) {
	svc := New(Config{})

	first := svc.CreateSession("sess-1")
	second := svc.CreateSession("sess-1")

	assert.Same(t, first, second)
	assert.Equal(t, model.StageAwareness, first.CurrentStage)
}

func TestSessions(t *testing.T) {
	svc := New(Config{})

	assert.Empty(t, svc.Sessions())

	svc.CreateSession("sess-1")
	svc.CreateSession("sess-2")

	assert.ElementsMatch(t, []string{"sess-1", "sess-2"}, svc.Sessions())
}

func TestGetProspect_Unknown(t *testing.T) {
	svc := New(Config{})

	_, err := svc.GetProspect("missing")

	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

// TestProcessTurn_FullConversation walks a single prospect from first contact
// to an issued handoff package.
func TestProcessTurn_FullConversation(t *testing.T) {
	notifier := &recordingNotifier{}
	archive := &recordingArchive{}
	clock := common.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	svc := New(Config{Notifier: notifier, Archive: archive, Clock: clock})
	ctx := context.Background()
	const sessionID = "sess-1"

	var history []string
	turn := func(utterance string) service.TurnResult {
		t.Helper()
		result, err := svc.ProcessTurn(ctx, sessionID, utterance, history)
		require.NoError(t, err)
		history = append(history, utterance)
		clock.Advance(time.Minute)
		return result
	}

	r1 := turn("I need an e-commerce site for my small business")
	assert.Equal(t, model.StageDiscovery, r1.Stage)
	assert.False(t, r1.ShouldNotify)

	r2 := turn("The store must support about 500 products. Our goal is to grow online sales.")
	assert.Equal(t, model.StageQualification, r2.Stage)

	r3 := turn("Budget is around $25k, we need it within a month. I'm the owner and you can reach me at jane@example.com")
	assert.Equal(t, model.StageProposal, r3.Stage)
	assert.False(t, r3.ShouldNotify)

	r4 := turn("Yes, let's do it. Success for us is doubling conversion rate")
	assert.Equal(t, model.StageCommitment, r4.Stage)
	// Commitment raises the notify signal, but the gate still withholds the
	// package while its score sits under the readiness threshold.
	assert.True(t, r4.ShouldNotify)
	assert.Nil(t, r4.Package)

	r5 := turn("We work with Stripe for payments and the team is on board. Payment terms sound fine. Our main challenge is cart abandonment.")
	assert.Equal(t, model.StageHandoff, r5.Stage)
	assert.True(t, r5.ShouldNotify)
	require.NotNil(t, r5.Package)
	assert.Equal(t, model.PriorityImmediate, r5.Package.Priority)
	assert.Equal(t, model.HandoffNormal, r5.Package.Urgency)
	assert.Equal(t, "within 1 hour", r5.Package.ResponseTime)

	p, err := svc.GetProspect(sessionID)
	require.NoError(t, err)
	assert.True(t, p.Qualification.ReadyForHandoff)
	assert.Same(t, r5.Package, p.Handoff)

	// One archived package, one notification per escalated channel, one
	// analytics row per turn.
	require.Len(t, archive.handoffs, 1)
	assert.Same(t, r5.Package, archive.handoffs[0])
	assert.Equal(t, []model.NotificationChannel{
		model.ChannelEmail, model.ChannelSMS, model.ChannelChat,
	}, notifier.channels)
	assert.Len(t, archive.turns, 5)
	assert.Equal(t, model.StageHandoff, archive.turns[4].Stage)
}

func TestProcessTurn_PackageIssuedOnce(t *testing.T) {
	notifier := &recordingNotifier{}
	archive := &recordingArchive{}
	svc := New(Config{Notifier: notifier, Archive: archive})
	ctx := context.Background()

	var history []string
	utterances := []string{
		"I need an e-commerce site for my small business",
		"The store must support about 500 products. Our goal is to grow online sales.",
		"Budget is around $25k, we need it within a month. I'm the owner and you can reach me at jane@example.com",
		"Yes, let's do it. Success for us is doubling conversion rate",
		"We work with Stripe for payments and the team is on board. Payment terms sound fine. Our main challenge is cart abandonment.",
	}
	for _, u := range utterances {
		_, err := svc.ProcessTurn(ctx, "sess-1", u, history)
		require.NoError(t, err)
		history = append(history, u)
	}

	// A follow-up turn after handoff re-raises the signal but never issues
	// or re-sends a second package.
	result, err := svc.ProcessTurn(ctx, "sess-1", "Thanks, talk soon!", history)
	require.NoError(t, err)

	assert.Equal(t, model.StageHandoff, result.Stage)
	assert.True(t, result.ShouldNotify)
	assert.Len(t, archive.handoffs, 1)
	assert.Len(t, notifier.channels, 3)
}

func TestProcessTurn_EmptyUtterance(t *testing.T) {
	svc := New(Config{})

	result, err := svc.ProcessTurn(context.Background(), "sess-1", "", nil)
	require.NoError(t, err)

	assert.Equal(t, model.StageAwareness, result.Stage)
	assert.NotEmpty(t, result.Message)
	assert.False(t, result.ShouldNotify)
}

func TestEvictStale(t *testing.T) {
	clock := common.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	svc := New(Config{Clock: clock})

	svc.CreateSession("old")
	clock.Advance(25 * time.Hour)
	svc.CreateSession("fresh")

	assert.Equal(t, 1, svc.EvictStale(24*time.Hour))
	_, err := svc.GetProspect("old")
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}
