package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractUsername(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"profile URL", "https://github.com/torvalds", "torvalds"},
		{"repo URL", "https://github.com/torvalds/linux", "torvalds"},
		{"trailing slash", "https://github.com/octocat/", "octocat"},
		{"reserved path features", "https://github.com/features/actions", ""},
		{"reserved path pricing", "https://github.com/pricing", ""},
		{"reserved path explore", "https://github.com/explore", ""},
		{"reserved path topics", "https://github.com/topics/go", ""},
		{"reserved path collections", "https://github.com/collections", ""},
		{"not github", "https://example.com/torvalds", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractUsername(tt.url); got != tt.want {
				t.Errorf("ExtractUsername(%s) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFetchProfileExcludesForks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/demo", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"login":     "demo",
			"name":      "Demo User",
			"bio":       "Builds things",
			"followers": 1600000,
		})
	})
	mux.HandleFunc("/users/demo/repos", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"name": "forked-giant", "full_name": "demo/forked-giant", "description": "a fork", "stargazers_count": 90000, "fork": true},
			{"name": "small", "full_name": "demo/small", "description": "small tool", "stargazers_count": 12, "fork": false},
			{"name": "big", "full_name": "demo/big", "description": "big project", "stargazers_count": 3400, "fork": false},
		})
	})
	mux.HandleFunc("/repos/demo/small/languages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int64{"Go": 1000})
	})
	mux.HandleFunc("/repos/demo/big/languages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int64{"Go": 5000, "Rust": 9000})
	})
	mux.HandleFunc("/repos/demo/big/readme", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient("")
	client.baseURL = server.URL

	profile, err := client.FetchProfile(context.Background(), "https://github.com/demo")
	if err != nil {
		t.Fatalf("FetchProfile failed: %v", err)
	}

	if profile.Name != "Demo User" {
		t.Errorf("name = %s", profile.Name)
	}
	if profile.Subscribers != "1.6M followers" {
		t.Errorf("subscribers = %s", profile.Subscribers)
	}

	if len(profile.Items) != 2 {
		t.Fatalf("items = %d, want 2 (fork excluded)", len(profile.Items))
	}
	if profile.Items[0].Title != "big" || *profile.Items[0].Stars != 3400 {
		t.Errorf("top repo = %s (%v stars)", profile.Items[0].Title, profile.Items[0].Stars)
	}
	if profile.Items[1].Title != "small" {
		t.Errorf("second repo = %s", profile.Items[1].Title)
	}

	// Rust has more bytes than Go across the non-fork repos.
	if len(profile.Languages) != 2 || profile.Languages[0] != "Rust" || profile.Languages[1] != "Go" {
		t.Errorf("languages = %v", profile.Languages)
	}
}

func TestFetchProfileReadme(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/demo", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"login": "demo", "followers": 10})
	})
	mux.HandleFunc("/users/demo/repos", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"name": "proj", "full_name": "demo/proj", "stargazers_count": 5, "fork": false},
		})
	})
	mux.HandleFunc("/repos/demo/proj/languages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int64{})
	})

	server := httptest.NewServer(mux)
	mux.HandleFunc("/repos/demo/proj/readme", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"download_url": server.URL + "/raw/readme"})
	})
	mux.HandleFunc("/raw/readme", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "# proj\n\nA demo project.")
	})
	defer server.Close()

	client := NewClient("")
	client.baseURL = server.URL

	profile, err := client.FetchProfile(context.Background(), "https://github.com/demo")
	if err != nil {
		t.Fatalf("FetchProfile failed: %v", err)
	}

	// Name falls back to the login when the profile has no display name.
	if profile.Name != "demo" {
		t.Errorf("name = %s", profile.Name)
	}
	if profile.Readme != "# proj\n\nA demo project." {
		t.Errorf("readme = %q", profile.Readme)
	}
}

func TestFetchProfileUserLookupFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("")
	client.baseURL = server.URL

	if _, err := client.FetchProfile(context.Background(), "https://github.com/ghost"); err == nil {
		t.Error("expected an error when the user lookup fails")
	}
}
