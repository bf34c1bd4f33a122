package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fitplanpro/fitplan-backend/internal/exercises"
	"github.com/fitplanpro/fitplan-backend/internal/users"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) request(
	ctx context.Context,
	method, path string,
	body any,
) *http.Response {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *IntegrationTestSuite) decodeBody(resp *http.Response, into any) {
	defer resp.Body.Close()
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(into))
}

func (s *IntegrationTestSuite) createUser(ctx context.Context, email, name string) users.User {
	resp := s.request(ctx, "POST", "/users", users.User{
		Email: email,
		Name:  name,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var created users.User
	s.decodeBody(resp, &created)
	require.NotEmpty(s.T(), created.ID)
	return created
}

// seedCatalog fills the shared exercise catalog once for all tests.
func (s *IntegrationTestSuite) seedCatalog(ctx context.Context) {
	s.catalog = make(map[string]int)

	equipmentIDs := make(map[string]int)
	for _, name := range []string{"barbell", "dumbbell", "pull-up bar"} {
		resp := s.request(ctx, "POST", "/equipment", exercises.Equipment{Name: name})
		if resp.StatusCode != http.StatusCreated {
			panic(fmt.Sprintf("seed equipment %s: status %d", name, resp.StatusCode))
		}
		var created exercises.Equipment
		s.decodeBody(resp, &created)
		equipmentIDs[name] = created.ID
	}

	for _, ex := range []struct {
		name           string
		primaryMuscle  string
		equipment      string
		caloriesPerMin float64
	}{
		{name: "Bench Press", primaryMuscle: "chest", equipment: "barbell", caloriesPerMin: 6},
		{name: "Push Up", primaryMuscle: "chest", caloriesPerMin: 7},
		{name: "Deadlift", primaryMuscle: "back", equipment: "barbell", caloriesPerMin: 9},
		{name: "Pull Up", primaryMuscle: "back", equipment: "pull-up bar", caloriesPerMin: 8},
		{name: "Squat", primaryMuscle: "legs", equipment: "barbell", caloriesPerMin: 8},
		{name: "Lunge", primaryMuscle: "legs", equipment: "dumbbell", caloriesPerMin: 6},
		{name: "Overhead Press", primaryMuscle: "shoulders", equipment: "barbell", caloriesPerMin: 6},
		{name: "Bicep Curl", primaryMuscle: "arms", equipment: "dumbbell", caloriesPerMin: 4},
		{name: "Plank", primaryMuscle: "core", caloriesPerMin: 4},
	} {
		var equipmentID *int
		if ex.equipment != "" {
			id := equipmentIDs[ex.equipment]
			equipmentID = &id
		}

		resp := s.request(ctx, "POST", "/exercises", exercises.Exercise{
			Name:           ex.name,
			PrimaryMuscle:  ex.primaryMuscle,
			EquipmentID:    equipmentID,
			CaloriesPerMin: ex.caloriesPerMin,
		})
		if resp.StatusCode != http.StatusCreated {
			panic(fmt.Sprintf("seed exercise %s: status %d", ex.name, resp.StatusCode))
		}
		var created exercises.Exercise
		s.decodeBody(resp, &created)
		s.catalog[ex.name] = created.ID
	}

	fmt.Printf("catalog seeded, %d exercises\n", len(s.catalog))
}
