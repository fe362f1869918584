package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo boost campaigns for local development. Settings are
// seeded by the initial migration, so only campaigns are created here.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statuses := []string{"active", "active", "pending_review", "paused", "completed"}
	tiers := []string{"24h", "3d", "7d", "30d"}
	audiences := []string{"local", "region", "retarget"}
	countries := []string{"US", "CA", "GB", "DE", "FR"}

	for i := 1; i <= 5; i++ {
		id := uuid.NewString()
		providerID := fmt.Sprintf("provider-%d", i)
		status := statuses[i-1]
		tier := tiers[r.Intn(len(tiers))]
		audience := audiences[r.Intn(len(audiences))]
		country := countries[r.Intn(len(countries))]
		budgetTotal := int64(25000 + r.Intn(8)*25000) // 250.00 .. 2000.00
		budgetSpent := int64(0)
		if status == "completed" {
			budgetSpent = budgetTotal
		} else if status != "pending_review" {
			budgetSpent = int64(r.Int63n(budgetTotal))
		}
		reach := int64(1000 + r.Intn(9000))
		createdAt := time.Now().Add(-time.Duration(r.Intn(48)) * time.Hour)
		endsAt := createdAt.Add(7 * 24 * time.Hour)

		tags, _ := json.Marshal([]string{"wedding", "photography"})
		analysis := []byte(`{"is_safe": true, "safety_score": 92, "quality_score": 78}`)
		if status == "pending_review" {
			analysis = []byte(`{"is_safe": false, "safety_score": 40, "quality_score": 55, "issues": ["exaggerated claim"], "reason": "flagged by content audit"}`)
		}

		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, provider_id, provider_name, headline, tagline, tags, image_ref, audience,
     duration_tier, target_country, budget_total, budget_spent, estimated_reach,
     status, impressions, clicks, reservations, revenue_generated, events,
     ai_analysis, created_at, ends_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,'[]',$19,$20,$21,now())
ON CONFLICT DO NOTHING`,
			id, providerID, fmt.Sprintf("Demo Provider %d", i),
			fmt.Sprintf("Boost me %d", i), "Weddings, parties and more",
			tags, fmt.Sprintf("https://example.com/img/%d.jpg", i),
			audience, tier, country, budgetTotal, budgetSpent, reach, status,
			budgetSpent/25, budgetSpent/500, budgetSpent/5000, budgetSpent/2,
			analysis, createdAt, endsAt)
		if err != nil {
			return err
		}
	}
	return nil
}
