// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/message-pool/models"
	"github.com/danielhkuo/message-pool/testutil"
)

func TestSubmitMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewMessageHandler(db, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		wantContent    string
	}{
		{
			name:           "valid message",
			requestBody:    models.SubmitMessageRequest{Content: "hello world"},
			expectedStatus: http.StatusCreated,
			wantContent:    "hello world",
		},
		{
			name:           "content is trimmed",
			requestBody:    models.SubmitMessageRequest{Content: "  padded  "},
			expectedStatus: http.StatusCreated,
			wantContent:    "padded",
		},
		{
			name:           "empty content",
			requestBody:    models.SubmitMessageRequest{Content: ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace-only content",
			requestBody:    models.SubmitMessageRequest{Content: "   \n\t  "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "content at the limit",
			requestBody:    models.SubmitMessageRequest{Content: strings.Repeat("x", 2000)},
			expectedStatus: http.StatusCreated,
			wantContent:    strings.Repeat("x", 2000),
		},
		{
			name:           "content over the limit",
			requestBody:    models.SubmitMessageRequest{Content: strings.Repeat("x", 2001)},
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:           "missing content field",
			requestBody:    map[string]string{"other": "field"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CountRows(t, db, "messages")

			req := testutil.MakeRequest("POST", "/messages", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.SubmitMessage(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			after := testutil.CountRows(t, db, "messages")
			if tt.expectedStatus != http.StatusCreated {
				if after != before {
					t.Errorf("Rejected submission created a row (%d -> %d)", before, after)
				}
				return
			}

			if after != before+1 {
				t.Fatalf("Expected one new row, got %d -> %d", before, after)
			}

			var resp models.SubmitMessageResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.OK {
				t.Error("Expected ok=true")
			}
			if resp.ID == 0 {
				t.Error("Expected non-zero id")
			}
			if resp.CreatedAt.IsZero() {
				t.Error("Expected non-zero createdAt")
			}

			var stored string
			if err := db.QueryRow(`SELECT content FROM messages WHERE id = $1`, resp.ID).Scan(&stored); err != nil {
				t.Fatalf("Failed to read stored message: %v", err)
			}
			if stored != tt.wantContent {
				t.Errorf("Expected stored content %q, got %q", tt.wantContent, stored)
			}
		})
	}
}

func TestSubmitMessage_MalformedJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewMessageHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/messages", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.SubmitMessage(w, req)

	// Malformed bodies fall into the empty-content validation path
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	if n := testutil.CountRows(t, db, "messages"); n != 0 {
		t.Errorf("Expected no rows after malformed submission, got %d", n)
	}
}

func TestSubmitMessage_StoresSenderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewMessageHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/messages", models.SubmitMessageRequest{Content: "signed"}, nil)
	req = testutil.WithClientID(req, "client-abc")
	w := httptest.NewRecorder()
	handler.SubmitMessage(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitMessageResponse
	testutil.AssertJSON(t, w, &resp)

	var senderID *string
	if err := db.QueryRow(`SELECT sender_id FROM messages WHERE id = $1`, resp.ID).Scan(&senderID); err != nil {
		t.Fatalf("Failed to read sender id: %v", err)
	}
	if senderID == nil || *senderID != "client-abc" {
		t.Errorf("Expected sender_id 'client-abc', got %v", senderID)
	}
}

func TestSubmitMessage_AnonymousSenderIsNull(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewMessageHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/messages", models.SubmitMessageRequest{Content: "anon"}, nil)
	w := httptest.NewRecorder()
	handler.SubmitMessage(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitMessageResponse
	testutil.AssertJSON(t, w, &resp)

	var senderID *string
	if err := db.QueryRow(`SELECT sender_id FROM messages WHERE id = $1`, resp.ID).Scan(&senderID); err != nil {
		t.Fatalf("Failed to read sender id: %v", err)
	}
	if senderID != nil {
		t.Errorf("Expected NULL sender_id, got %q", *senderID)
	}
}

func TestSubmitMessage_DuplicatesAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewMessageHandler(db, testutil.GetTestConfig())

	for i := 0; i < 2; i++ {
		req := testutil.MakeRequest("POST", "/messages", models.SubmitMessageRequest{Content: "same text"}, nil)
		w := httptest.NewRecorder()
		handler.SubmitMessage(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	if n := testutil.CountRows(t, db, "messages"); n != 2 {
		t.Errorf("Expected 2 rows for duplicate content, got %d", n)
	}
}
