package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"skillswap-service/internal/auth"
	"skillswap-service/internal/config"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var searchQueries = []string{"", "offer", "seek python", "guitar", "offer go", "design", "seek"}

type seededUser struct {
	ID    int64
	Token string
}

type loadState struct {
	host   string
	users  []seededUser
	skills []int64
}

var httpc = &http.Client{Timeout: 10 * time.Second}

func doJSON(method, target, token string, body, out any) (int, error) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req, _ := http.NewRequest(method, target, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Seed
func seedData(state *loadState, tokens *auth.TokenManager, usersCount int) error {
	log.Println("Seeding: creating skills...")

	for _, name := range []string{"Go", "Python", "Guitar", "Design", "Chess", "Spanish", "Cooking", "SQL"} {
		var resp struct {
			Skill struct {
				SkillID int64 `json:"skill_id"`
			} `json:"skill"`
		}
		status, err := doJSON(http.MethodPost, state.host+"/skills", "", map[string]string{"name": name}, &resp)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN skills returned %d\n", status)
			continue
		}
		state.skills = append(state.skills, resp.Skill.SkillID)
	}

	log.Println("Seeding: creating users and postings...")

	run := time.Now().UnixNano() % 100000
	for u := 0; u < usersCount; u++ {
		var resp struct {
			User struct {
				UserID int64 `json:"user_id"`
			} `json:"user"`
		}
		status, err := doJSON(http.MethodPost, state.host+"/users", "", map[string]string{
			"username": fmt.Sprintf("load_%d_%d", run, u),
			"alias":    fmt.Sprintf("l%d_%d", run, u),
			"email":    fmt.Sprintf("load.%d.%d@example.com", run, u),
			"password": "password123",
		}, &resp)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN users returned %d\n", status)
			continue
		}

		token, err := tokens.Issue(resp.User.UserID)
		if err != nil {
			return err
		}
		user := seededUser{ID: resp.User.UserID, Token: token}
		state.users = append(state.users, user)

		postingType := "OFFER"
		if u%2 == 1 {
			postingType = "SEEK"
		}
		status, err = doJSON(http.MethodPost, state.host+"/postings", user.Token, map[string]any{
			"type":        postingType,
			"description": fmt.Sprintf("Load posting %d", u),
			"skill_id":    state.skills[rand.Intn(len(state.skills))],
		}, nil)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN postings returned %d\n", status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if len(state.users) < 2 || len(state.skills) < 2 {
		return fmt.Errorf("not enough seeded data: users=%d skills=%d", len(state.users), len(state.skills))
	}

	log.Printf("Seed completed: skills=%d users=%d\n", len(state.skills), len(state.users))
	return nil
}

func randomPair[T any](items []T) (T, T) {
	i := rand.Intn(len(items))
	j := (i + 1 + rand.Intn(len(items)-1)) % len(items)
	return items[i], items[j]
}

// Targeter
func makeTargeter(state *loadState) vegeta.Targeter {
	jsonHeader := func(token string) http.Header {
		h := http.Header{"Content-Type": {"application/json"}}
		if token != "" {
			h.Set("Authorization", "Bearer "+token)
		}
		return h
	}

	return func(t *vegeta.Target) error {
		r := rand.Float64()
		t.Body = nil

		// 50% поиск публикаций
		if r < 0.50 {
			q := searchQueries[rand.Intn(len(searchQueries))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/postings?q=%s", state.host, url.QueryEscape(q))
			t.Header = http.Header{"Accept": {"application/json"}}
			return nil
		}

		// 25% соглашения пользователя
		if r < 0.75 {
			user := state.users[rand.Intn(len(state.users))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/agreements?user_id=%d", state.host, user.ID)
			t.Header = http.Header{"Accept": {"application/json"}}
			return nil
		}

		// 10% каталог навыков (кэшируется)
		if r < 0.85 {
			t.Method = http.MethodGet
			t.URL = state.host + "/skills"
			t.Header = http.Header{"Accept": {"application/json"}}
			return nil
		}

		// 10% новое соглашение; 409 на дубликат ожидаем
		if r < 0.95 {
			partyA, partyB := randomPair(state.users)
			skillA, skillB := randomPair(state.skills)
			body, _ := json.Marshal(map[string]int64{
				"party_a_id": partyA.ID,
				"skill_a_id": skillA,
				"skill_b_id": skillB,
			})
			t.Method = http.MethodPost
			t.URL = state.host + "/agreements"
			t.Body = body
			t.Header = jsonHeader(partyB.Token)
			return nil
		}

		// 5% конкурирующие отмены одного и того же соглашения
		user := state.users[rand.Intn(len(state.users))]
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/agreements/%d/cancel", state.host, 1+rand.Intn(50))
		t.Header = jsonHeader(user.Token)
		return nil
	}
}

// Attack
func runAttack(state *loadState, rps int, duration time.Duration) {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter(state)

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", state.host, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	host := flag.String("host", "http://localhost:8080", "target service base URL")
	rps := flag.Int("rps", 5, "requests per second")
	duration := flag.Duration("duration", 3*time.Minute, "attack duration")
	usersCount := flag.Int("users", 50, "users to seed before the attack")
	flag.Parse()

	// Токены подписываются тем же секретом, что и у сервиса
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config: %v", err)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	state := &loadState{host: *host}
	if err := seedData(state, tokens, *usersCount); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack(state, *rps, *duration)
}
