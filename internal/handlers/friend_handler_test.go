package handlers_test

import (
	"net/http"
	"testing"
)

func TestSendFriendRequestToSelf(t *testing.T) {
	server, _ := setupTestServer(t)

	token, id := registerUser(t, server, "Sam Wong", "sam@example.com")

	resp := doJSON(t, http.MethodPost, userURL(server, id)+"/send-friend-request", token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("self friend request returned status %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestDuplicatePendingFriendRequest(t *testing.T) {
	server, _ := setupTestServer(t)

	samToken, samID := registerUser(t, server, "Sam Wong", "sam@example.com")
	janeToken, janeID := registerUser(t, server, "Jane Smith", "jane@example.com")

	resp := doJSON(t, http.MethodPost, userURL(server, janeID)+"/send-friend-request", samToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first friend request returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	resp = doJSON(t, http.MethodPost, userURL(server, janeID)+"/send-friend-request", samToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("duplicate friend request returned status %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	// A pending request in the other direction is also blocked
	resp = doJSON(t, http.MethodPost, userURL(server, samID)+"/send-friend-request", janeToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("reverse friend request returned status %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestAcceptFriendRequestOnlyRecipient(t *testing.T) {
	server, _ := setupTestServer(t)

	samToken, _ := registerUser(t, server, "Sam Wong", "sam@example.com")
	_, janeID := registerUser(t, server, "Jane Smith", "jane@example.com")
	bobToken, _ := registerUser(t, server, "Bob Li", "bob@example.com")

	resp := doJSON(t, http.MethodPost, userURL(server, janeID)+"/send-friend-request", samToken, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("send friend request returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var request struct {
		ID uint `json:"ID"`
	}
	decodeJSON(t, resp, &request)

	acceptURL := server.URL + "/api/v1/friend-requests/" + uitoa(request.ID) + "/accept"

	// Neither the sender nor a third party may accept
	resp = doJSON(t, http.MethodPost, acceptURL, samToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("accept by sender returned status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}

	resp = doJSON(t, http.MethodPost, acceptURL, bobToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("accept by third party returned status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestAcceptCreatesMutualFriendship(t *testing.T) {
	server, _ := setupTestServer(t)

	samToken, samID := registerUser(t, server, "Sam Wong", "sam@example.com")
	janeToken, janeID := registerUser(t, server, "Jane Smith", "jane@example.com")

	makeFriends(t, server, samToken, janeToken, janeID)

	for _, tc := range []struct {
		token    string
		friendID uint
	}{
		{samToken, janeID},
		{janeToken, samID},
	} {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/me/friends", tc.token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("friends listing returned status %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var friends []struct {
			ID uint `json:"id"`
		}
		decodeJSON(t, resp, &friends)
		if len(friends) != 1 || friends[0].ID != tc.friendID {
			t.Errorf("friends listing = %v, want single friend %d", friends, tc.friendID)
		}
	}
}

func TestPendingFriendRequestsListing(t *testing.T) {
	server, _ := setupTestServer(t)

	samToken, samID := registerUser(t, server, "Sam Wong", "sam@example.com")
	janeToken, janeID := registerUser(t, server, "Jane Smith", "jane@example.com")

	resp := doJSON(t, http.MethodPost, userURL(server, janeID)+"/send-friend-request", samToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("send friend request returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/me/friend-requests/pending", janeToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pending listing returned status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var pending []struct {
		FromUserID uint `json:"from_user_id"`
	}
	decodeJSON(t, resp, &pending)
	if len(pending) != 1 || pending[0].FromUserID != samID {
		t.Errorf("pending listing = %v, want single request from %d", pending, samID)
	}
}

func TestFriendExpenseVisibilityDefaultsHidden(t *testing.T) {
	server, _ := setupTestServer(t)

	samToken, samID := registerUser(t, server, "Sam Wong", "sam@example.com")
	janeToken, janeID := registerUser(t, server, "Jane Smith", "jane@example.com")
	bobToken, _ := registerUser(t, server, "Bob Li", "bob@example.com")

	makeFriends(t, server, samToken, janeToken, janeID)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/expenses", samToken, map[string]interface{}{
		"amount":      12.00,
		"description": "Lunch",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expense returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	samExpensesURL := server.URL + "/api/v1/friends/" + uitoa(samID) + "/expenses"

	// Friendship alone is not enough until Sam grants visibility
	resp = doJSON(t, http.MethodGet, samExpensesURL, janeToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("friend expenses without grant returned status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}

	resp = doJSON(t, http.MethodPatch, server.URL+"/api/v1/friends/"+uitoa(janeID)+"/toggle-expense-visibility", samToken, map[string]bool{
		"visible": true,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle visibility returned status %d, want %d", resp.StatusCode, http.StatusOK)
	}

	resp = doJSON(t, http.MethodGet, samExpensesURL, janeToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("friend expenses after grant returned status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var expenses []struct {
		Description string `json:"description"`
	}
	decodeJSON(t, resp, &expenses)
	if len(expenses) != 1 || expenses[0].Description != "Lunch" {
		t.Errorf("friend expenses = %v, want the single lunch expense", expenses)
	}

	// Non-friends stay rejected regardless of any grant
	resp = doJSON(t, http.MethodGet, samExpensesURL, bobToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("friend expenses for non-friend returned status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestToggleVisibilityRequiresFriendship(t *testing.T) {
	server, _ := setupTestServer(t)

	samToken, _ := registerUser(t, server, "Sam Wong", "sam@example.com")
	_, janeID := registerUser(t, server, "Jane Smith", "jane@example.com")

	resp := doJSON(t, http.MethodPatch, server.URL+"/api/v1/friends/"+uitoa(janeID)+"/toggle-expense-visibility", samToken, map[string]bool{
		"visible": true,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("toggle visibility for non-friend returned status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}
