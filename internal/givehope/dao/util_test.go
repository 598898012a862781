package dao

import (
	"os"
	"testing"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/editor"
	"github.com/givehope/givehope.go/internal/givehope/export"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	db, _ = gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	db.AutoMigrate(
		&StudioDocument{},
		&Campaign{},
		&CampaignRecipient{},
		&Ticket{},
		&TicketReply{},
		&Donation{},
		&ContentPost{},
	)

	code := m.Run()
	os.Exit(code)
}

func TestDocumentSnapshotRoundTrip(t *testing.T) {
	state := editor.NewState()
	state.InsertNewBlock(editor.BlockButton, 1)

	doc := StudioDocument{
		Name:     "October appeal",
		Snapshot: DocumentSnapshot{export.TakeSnapshot(state)},
	}
	assert.NoError(t, db.Create(&doc).Error)
	t.Cleanup(func() { db.Delete(&doc) })

	assert.NotEmpty(t, doc.Id, "BeforeCreate must assign an id")
	assert.Equal(t, "desktop", mustGetDocument(t, doc.Id).Device)

	loaded := mustGetDocument(t, doc.Id)
	assert.Equal(t, len(state.Blocks), len(loaded.Snapshot.Blocks))
	for i, b := range loaded.Snapshot.Blocks {
		assert.Equal(t, state.Blocks[i].Id, b.Id)
		assert.Equal(t, state.Blocks[i].Type, b.Type)
	}

	// styles survive the jsonb round trip
	var btn *editor.Block
	for i := range loaded.Snapshot.Blocks {
		if loaded.Snapshot.Blocks[i].Type == editor.BlockButton {
			btn = &loaded.Snapshot.Blocks[i]
		}
	}
	if btn == nil {
		t.Fatal("button block lost")
	}
	assert.NotNil(t, btn.Styles.Background)
}

func mustGetDocument(t *testing.T, id string) StudioDocument {
	t.Helper()
	doc, err := GetDocument(db, id)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetDocumentNotFound(t *testing.T) {
	_, err := GetDocument(db, GenID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDueCampaigns(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	campaigns := []Campaign{
		{Name: "due", Status: CampaignScheduled, ScheduledAt: &past},
		{Name: "not yet", Status: CampaignScheduled, ScheduledAt: &future},
		{Name: "draft", Status: CampaignDraft, ScheduledAt: &past},
		{Name: "already sent", Status: CampaignSent, ScheduledAt: &past},
	}
	for i := range campaigns {
		assert.NoError(t, db.Create(&campaigns[i]).Error)
	}
	t.Cleanup(func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&campaigns)
	})

	due, err := DueCampaigns(db, now)
	assert.NoError(t, err)
	if assert.Len(t, due, 1) {
		assert.Equal(t, "due", due[0].Name)
	}
}

func TestCampaignRecipientToken(t *testing.T) {
	campaign := Campaign{Name: "tokens"}
	assert.NoError(t, db.Create(&campaign).Error)

	recipients := []CampaignRecipient{
		{CampaignId: campaign.Id, Email: "a@example.org"},
		{CampaignId: campaign.Id, Email: "b@example.org"},
	}
	for i := range recipients {
		assert.NoError(t, db.Create(&recipients[i]).Error)
	}
	t.Cleanup(func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&recipients)
		db.Delete(&campaign)
	})

	assert.NotEmpty(t, recipients[0].UnsubscribeToken)
	assert.NotEqual(t, recipients[0].UnsubscribeToken, recipients[1].UnsubscribeToken)
}

func TestGetTicketRepliesOrdered(t *testing.T) {
	ticket := Ticket{Subject: "Where does my donation go?", Body: "Hello"}
	assert.NoError(t, db.Create(&ticket).Error)

	replies := []TicketReply{
		{TicketId: ticket.Id, Body: "first", CreatedAt: time.Now().Add(-2 * time.Minute)},
		{TicketId: ticket.Id, Body: "second", CreatedAt: time.Now().Add(-time.Minute)},
	}
	for i := range replies {
		assert.NoError(t, db.Create(&replies[i]).Error)
	}
	t.Cleanup(func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&replies)
		db.Delete(&ticket)
	})

	loaded, err := GetTicket(db, ticket.Id)
	assert.NoError(t, err)
	if assert.Len(t, loaded.Replies, 2) {
		assert.Equal(t, "first", loaded.Replies[0].Body)
		assert.Equal(t, "second", loaded.Replies[1].Body)
	}
}

func TestDocumentLightDTO(t *testing.T) {
	state := editor.NewState()
	doc := StudioDocument{
		Name:     "dto",
		Snapshot: DocumentSnapshot{export.TakeSnapshot(state)},
	}
	assert.NoError(t, db.Create(&doc).Error)
	t.Cleanup(func() { db.Delete(&doc) })

	light := doc.ToLightDTO()
	if assert.NotNil(t, light) {
		assert.Equal(t, doc.Id, light.Id)
		assert.Equal(t, len(state.Blocks), light.BlockCount)
	}

	var missing *StudioDocument
	assert.Nil(t, missing.ToLightDTO())
}
