package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boost-ads/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Per-campaign serialization is provided by row locks: every mutation goes
// through a transaction that SELECTs the row FOR UPDATE, so concurrent
// transitions on the same id are applied one after another and the loser
// observes the new state.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, provider_id, provider_name, headline, tagline, tags, image_ref,
       audience, duration_tier, target_country, budget_total, budget_spent, estimated_reach,
       status, impressions, clicks, reservations, revenue_generated, events, ai_analysis,
       created_at, ends_at, updated_at`

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		tagsRaw     []byte
		eventsRaw   []byte
		analysisRaw []byte
	)
	err := row.Scan(
		&c.ID, &c.ProviderID, &c.ProviderName,
		&c.Creative.Headline, &c.Creative.Tagline, &tagsRaw, &c.Creative.ImageRef,
		&c.Audience, &c.DurationTier, &c.TargetCountry,
		&c.BudgetTotal, &c.BudgetSpent, &c.EstimatedReach,
		&c.Status,
		&c.Stats.Impressions, &c.Stats.Clicks, &c.Stats.Reservations, &c.Stats.RevenueGenerated,
		&eventsRaw, &analysisRaw,
		&c.CreatedAt, &c.EndsAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(tagsRaw, &c.Creative.Tags); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(eventsRaw, &c.Events); err != nil {
		return nil, err
	}
	if len(analysisRaw) > 0 {
		var a domain.AuditResult
		if err = json.Unmarshal(analysisRaw, &a); err != nil {
			return nil, err
		}
		c.AIAnalysis = &a
	}
	return &c, nil
}

// CreateCampaign persists a new campaign row.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	tagsRaw, err := json.Marshal(c.Creative.Tags)
	if err != nil {
		return err
	}
	eventsRaw, err := json.Marshal(c.Events)
	if err != nil {
		return err
	}
	var analysisRaw []byte
	if c.AIAnalysis != nil {
		if analysisRaw, err = json.Marshal(c.AIAnalysis); err != nil {
			return err
		}
	}
	if len(c.Events) == 0 {
		eventsRaw = []byte("[]")
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, provider_id, provider_name, headline, tagline, tags, image_ref, audience,
     duration_tier, target_country, budget_total, budget_spent, estimated_reach,
     status, impressions, clicks, reservations, revenue_generated, events,
     ai_analysis, created_at, ends_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)`,
		c.ID, c.ProviderID, c.ProviderName,
		c.Creative.Headline, c.Creative.Tagline, tagsRaw, c.Creative.ImageRef,
		c.Audience, c.DurationTier, c.TargetCountry,
		c.BudgetTotal, c.BudgetSpent, c.EstimatedReach,
		c.Status,
		c.Stats.Impressions, c.Stats.Clicks, c.Stats.Reservations, c.Stats.RevenueGenerated,
		eventsRaw, analysisRaw,
		c.CreatedAt, c.EndsAt, c.UpdatedAt)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// GetCampaign returns a campaign snapshot by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		out = append(out, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// ListByProvider returns the provider's campaigns, newest first.
func (r *CampaignRepository) ListByProvider(ctx context.Context, providerID string) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE provider_id = $1 ORDER BY created_at DESC`, providerID)
}

// ListAll returns every campaign, newest first.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
}

// ListByStatus returns campaigns in the given status, oldest first. The
// moderation queue relies on this ordering for fairness.
func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE status = $1 ORDER BY created_at ASC`, status)
}

// UpdateAtomic loads the campaign under a row lock, applies mutate and
// writes back every mutable column. A mutate error rolls the transaction
// back and is returned unchanged so domain error kinds survive.
func (r *CampaignRepository) UpdateAtomic(ctx context.Context, id string, mutate func(*domain.Campaign) error) (out *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			out = nil
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = storeErr(err)
			out = nil
		}
	}()

	row := tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	var c *domain.Campaign
	c, err = scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrCampaignNotFound
		return nil, err
	}
	if err != nil {
		err = storeErr(err)
		return nil, err
	}

	if err = mutate(c); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()

	var eventsRaw, analysisRaw []byte
	if eventsRaw, err = json.Marshal(c.Events); err != nil {
		return nil, err
	}
	if len(c.Events) == 0 {
		eventsRaw = []byte("[]")
	}
	if c.AIAnalysis != nil {
		if analysisRaw, err = json.Marshal(c.AIAnalysis); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET
        budget_spent = $2, status = $3, impressions = $4, clicks = $5,
        reservations = $6, revenue_generated = $7, events = $8,
        ai_analysis = $9, updated_at = $10
    WHERE id = $1`,
		c.ID, c.BudgetSpent, c.Status,
		c.Stats.Impressions, c.Stats.Clicks, c.Stats.Reservations, c.Stats.RevenueGenerated,
		eventsRaw, analysisRaw, c.UpdatedAt)
	if err != nil {
		err = storeErr(err)
		return nil, err
	}
	return c, err
}

// GetSettings returns the singleton global ad settings row.
func (r *CampaignRepository) GetSettings(ctx context.Context) (*domain.AdSettings, error) {
	var (
		s        domain.AdSettings
		multsRaw []byte
		ctrsRaw  []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT enabled, base_cpm, duration_multipliers, allowed_countries, version, updated_at
        FROM ad_settings WHERE id = 1`).
		Scan(&s.Enabled, &s.BaseCPM, &multsRaw, &ctrsRaw, &s.Version, &s.UpdatedAt)
	if err != nil {
		return nil, storeErr(err)
	}
	if err = json.Unmarshal(multsRaw, &s.DurationMultipliers); err != nil {
		return nil, storeErr(err)
	}
	if err = json.Unmarshal(ctrsRaw, &s.AllowedCountries); err != nil {
		return nil, storeErr(err)
	}
	return &s, nil
}

// SaveSettings writes the settings row if the stored version still matches
// s.Version, bumping the version on success. A concurrent admin write makes
// the guard fail and surfaces as ErrSettingsConflict.
func (r *CampaignRepository) SaveSettings(ctx context.Context, s *domain.AdSettings) error {
	multsRaw, err := json.Marshal(s.DurationMultipliers)
	if err != nil {
		return err
	}
	ctrsRaw, err := json.Marshal(s.AllowedCountries)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE ad_settings SET
        enabled = $1, base_cpm = $2, duration_multipliers = $3,
        allowed_countries = $4, version = version + 1, updated_at = now()
    WHERE id = 1 AND version = $5`,
		s.Enabled, s.BaseCPM, multsRaw, ctrsRaw, s.Version)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSettingsConflict
	}
	s.Version++
	return nil
}
