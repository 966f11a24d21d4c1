package queries

//go:generate mockgen -source=snapshot.go -destination=../../../tests/mock/queries/snapshot_mock.go -package=queriesmock

import (
	"context"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/infra/automation"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type ConversationView struct {
	Phone                string     `json:"phone" copier:"-"`
	UnrecognizedIdentity bool       `json:"unrecognized_identity"`
	OrderReference       string     `json:"order_reference"`
	Product              string     `json:"product"`
	Status               string     `json:"status"`
	AssignedInstance     string     `json:"instance"`
	Amount               string     `json:"amount" copier:"-"`
	ClientName           string     `json:"client_name"`
	PaymentLinkURL       string     `json:"payment_link,omitempty"`
	ResponsesSent        int        `json:"responses_sent"`
	RepliesReceived      int        `json:"replies_received"`
	CreatedAt            time.Time  `json:"created_at"`
	LastActivityAt       time.Time  `json:"last_activity_at"`
	AwaitingConfirmation bool       `json:"awaiting_confirmation"`
	AdvancementInFlight  bool       `json:"advancement_in_flight"`
	PendingStep          int        `json:"pending_step,omitempty"`
	TimeoutArmed         bool       `json:"timeout_armed"`
	TimeoutAt            *time.Time `json:"timeout_at,omitempty" copier:"-"`
}

type DispatchView struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
}

type MirrorView struct {
	Dropped int64 `json:"dropped"`
	Failed  int64 `json:"failed"`
}

type HealthView struct {
	StartedAt     time.Time      `json:"started_at"`
	Uptime        string         `json:"uptime"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Active        int            `json:"active"`
	ByStatus      map[string]int `json:"by_status"`
	Dispatch      DispatchView   `json:"dispatch"`
	Mirror        *MirrorView    `json:"mirror,omitempty"`
}

type SnapshotView struct {
	GeneratedAt   time.Time          `json:"generated_at"`
	Conversations []ConversationView `json:"conversations"`
	Health        HealthView         `json:"health"`
}

type DispatchStatsSource interface {
	Stats() automation.Stats
}

type MirrorStatsSource interface {
	Dropped() int64
	Failed() int64
}

type DashboardQueries interface {
	Snapshot(ctx context.Context) (*SnapshotView, error)
}

type DashboardParams struct {
	Conversations ConversationReader
	Dispatch      DispatchStatsSource
	Mirror        MirrorStatsSource
	Clock         clock.Clock
	StartedAt     time.Time
}

type dashboardQueriesImpl struct {
	conversations ConversationReader
	dispatch      DispatchStatsSource
	mirror        MirrorStatsSource
	clock         clock.Clock
	startedAt     time.Time
}

func NewDashboardQueries(p DashboardParams) DashboardQueries {
	return &dashboardQueriesImpl{
		conversations: p.Conversations,
		dispatch:      p.Dispatch,
		mirror:        p.Mirror,
		clock:         p.Clock,
		startedAt:     p.StartedAt,
	}
}

func (q *dashboardQueriesImpl) Snapshot(_ context.Context) (*SnapshotView, error) {
	now := q.clock.Now()
	snaps := q.conversations.List()

	view := &SnapshotView{
		GeneratedAt:   now,
		Conversations: make([]ConversationView, 0, len(snaps)),
		Health: HealthView{
			StartedAt: q.startedAt,
			Active:    len(snaps),
			ByStatus:  make(map[string]int),
		},
	}
	for i := range snaps {
		cv, err := projectConversation(&snaps[i])
		if err != nil {
			return nil, err
		}
		view.Conversations = append(view.Conversations, cv)
		view.Health.ByStatus[cv.Status]++
	}

	uptime := now.Sub(q.startedAt).Truncate(time.Second)
	view.Health.Uptime = uptime.String()
	view.Health.UptimeSeconds = int64(uptime / time.Second)
	if q.dispatch != nil {
		s := q.dispatch.Stats()
		view.Health.Dispatch = DispatchView{Succeeded: s.Succeeded, Failed: s.Failed}
	}
	if q.mirror != nil {
		view.Health.Mirror = &MirrorView{Dropped: q.mirror.Dropped(), Failed: q.mirror.Failed()}
	}
	return view, nil
}

func projectConversation(snap *conversation.Snapshot) (ConversationView, error) {
	var cv ConversationView
	if err := copier.Copy(&cv, snap); err != nil {
		return ConversationView{}, errs.Wrap(err, "failed to project conversation")
	}
	cv.Phone = snap.Identity.String()
	cv.Amount = snap.Amount.String()
	if !snap.TimeoutAt.IsZero() {
		at := snap.TimeoutAt
		cv.TimeoutAt = &at
	}
	return cv, nil
}
