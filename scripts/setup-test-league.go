package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const apiBase = "http://localhost:8080/api/v1"

type League struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	JoinToken string `json:"joinToken"`
}

type Team struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type JoinResponse struct {
	League       League `json:"league"`
	Team         Team   `json:"team"`
	SessionToken string `json:"sessionToken"`
}

type Member struct {
	Team         Team   `json:"team"`
	SessionToken string `json:"sessionToken"`
}

func createLeague(name string, teams, picks int) (*League, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"name":         name,
		"maxTeams":     teams,
		"picksPerTeam": picks,
	})

	resp, err := http.Post(apiBase+"/leagues", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create league failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result League
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return &result, nil
}

func joinLeague(joinToken, displayName string) (*Member, error) {
	body, _ := json.Marshal(map[string]string{"displayName": displayName})

	resp, err := http.Post(apiBase+"/leagues/"+joinToken+"/join", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("join failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result JoinResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return &Member{Team: result.Team, SessionToken: result.SessionToken}, nil
}

func addCelebrity(leagueID, sessionToken, name string) error {
	body, _ := json.Marshal(map[string]string{"name": name})

	req, _ := http.NewRequest("POST", apiBase+"/leagues/"+leagueID+"/celebrities", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// 409 means someone already nominated this name, which is fine for seeding
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("add celebrity failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

func main() {
	teamNames := []string{"The A-Listers", "Red Carpet Rejects", "Tabloid Fodder", "Paparazzi Bait"}
	celebrityNames := []string{
		"Zendaya", "Keanu Reeves", "Ayo Edebiri", "Pedro Pascal",
		"Florence Pugh", "Donald Glover", "Margot Robbie", "Ryan Gosling",
		"Jenna Ortega", "Paul Mescal", "Sydney Sweeney", "Timothee Chalamet",
		"Greta Gerwig", "Bad Bunny", "Taylor Swift", "Jeremy Allen White",
		"Emma Stone", "Glen Powell", "Quinta Brunson", "Dev Patel",
	}

	fmt.Println("Setting up test league...")

	league, err := createLeague("Celebrity Test League", len(teamNames), 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create league: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ League created: %s\n", league.JoinToken)

	var members []*Member
	for _, name := range teamNames {
		member, err := joinLeague(league.JoinToken, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to join %s: %v\n", name, err)
			os.Exit(1)
		}
		members = append(members, member)
		fmt.Printf("  ✓ Team joined: %s\n", member.Team.DisplayName)
	}

	fmt.Println("\nSeeding celebrity pool...")
	for i, name := range celebrityNames {
		member := members[i%len(members)]
		if err := addCelebrity(league.ID, member.SessionToken, name); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add %s: %v\n", name, err)
			os.Exit(1)
		}
	}
	fmt.Printf("  ✓ %d celebrities added\n", len(celebrityNames))

	fmt.Println("\n" + "============================================================")
	fmt.Println("TEST LEAGUE SETUP COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("\nLeague ID:  %s\n", league.ID)
	fmt.Printf("Join token: %s\n", league.JoinToken)
	fmt.Printf("Commissioner: %s\n", members[0].Team.DisplayName)

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Start the draft:\n")
	fmt.Printf("     curl -X POST %s/leagues/%s/start-draft \\\n", apiBase, league.ID)
	fmt.Printf("       -H 'Authorization: Bearer %s'\n", members[0].SessionToken)
	fmt.Printf("  2. Poll draft state:\n")
	fmt.Printf("     curl %s/leagues/%s/draft-state\n", apiBase, league.ID)

	// Output JSON for programmatic use
	output := map[string]interface{}{
		"league": map[string]string{
			"id":        league.ID,
			"joinToken": league.JoinToken,
		},
		"teams": members,
	}

	fmt.Println("\nJSON OUTPUT (for scripts):")
	jsonOutput, _ := json.MarshalIndent(output, "", "  ")
	fmt.Println(string(jsonOutput))
}
