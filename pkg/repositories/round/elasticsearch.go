package round

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/entities"
)

const roundMapping = `{
	"mappings": {
		"properties": {
			"round_id": { "type": "keyword" },
			"channel_id": { "type": "keyword" },
			"hand_size": { "type": "integer" },
			"dealt_at": { "type": "date" },
			"winner_id": { "type": "keyword" },
			"players": {
				"type": "nested",
				"properties": {
					"player_id": { "type": "keyword" },
					"player_name": { "type": "keyword" },
					"seat": { "type": "integer" },
					"cards": { "type": "keyword" },
					"deadwood": { "type": "keyword" },
					"melded_cards": { "type": "integer" },
					"score": { "type": "integer" },
					"set_melds": { "type": "integer" },
					"run_melds": { "type": "integer" },
					"result": { "type": "keyword" }
				}
			}
		}
	}
}`

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	// Transport overrides the HTTP transport, mainly for tests
	Transport http.RoundTripper
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "ginrummy",
	}
}

// ElasticsearchRepository stores rounds in a base repository and indexes every
// round into Elasticsearch for search and dashboards
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	index    string
	logger   *logging.Logger
}

// NewElasticsearchRepository creates the repository and its index if missing
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig, logger *logging.Logger) (*ElasticsearchRepository, error) {
	if config == nil {
		config = DefaultElasticsearchConfig()
	}
	if logger == nil {
		logger = logging.Default
	}

	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
		Transport: config.Transport,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := config.IndexPrefix
	if prefix == "" {
		prefix = "ginrummy"
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		index:    prefix + "_rounds",
		logger:   logger,
	}

	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

// Index returns the name of the rounds index
func (r *ElasticsearchRepository) Index() string {
	return r.index
}

// initIndex creates the rounds index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(roundMapping)),
	}

	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	r.logger.Info("Created Elasticsearch index %s", r.index)
	return nil
}

// SaveRound stores the round in the base repository, then indexes it
func (r *ElasticsearchRepository) SaveRound(ctx context.Context, round *entities.Round) error {
	if err := r.baseRepo.SaveRound(ctx, round); err != nil {
		return err
	}
	return r.IndexRound(ctx, round)
}

// IndexRound writes the round document, keyed by round ID
func (r *ElasticsearchRepository) IndexRound(ctx context.Context, round *entities.Round) error {
	jsonData, err := json.Marshal(ToESRound(round))
	if err != nil {
		return fmt.Errorf("error marshaling round: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(jsonData),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(round.ID),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return types.WrapError(types.ErrNetworkError, "Failed to index round", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return types.NewGameError(types.ErrDatabaseError, fmt.Sprintf("Failed to index round: %s", res.String()))
	}

	return nil
}

// GetRound delegates to the base repository
func (r *ElasticsearchRepository) GetRound(ctx context.Context, id string) (*entities.Round, error) {
	return r.baseRepo.GetRound(ctx, id)
}

// GetChannelRounds delegates to the base repository
func (r *ElasticsearchRepository) GetChannelRounds(ctx context.Context, channelID string, limit int) ([]*entities.Round, error) {
	return r.baseRepo.GetChannelRounds(ctx, channelID, limit)
}

// GetPlayerRounds delegates to the base repository
func (r *ElasticsearchRepository) GetPlayerRounds(ctx context.Context, playerID string) ([]*entities.Round, error) {
	return r.baseRepo.GetPlayerRounds(ctx, playerID)
}

// PruneRounds prunes the base repository and deletes the same rounds from the index
func (r *ElasticsearchRepository) PruneRounds(ctx context.Context, cutoff time.Time) (int, error) {
	removed, err := r.baseRepo.PruneRounds(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`{
		"query": {
			"range": { "dealt_at": { "lt": %q } }
		}
	}`, cutoff.UTC().Format(time.RFC3339Nano))

	res, err := r.client.DeleteByQuery(
		[]string{r.index},
		bytes.NewReader([]byte(query)),
		r.client.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return removed, types.WrapError(types.ErrNetworkError, "Failed to prune indexed rounds", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return removed, types.NewGameError(types.ErrDatabaseError, fmt.Sprintf("Failed to prune indexed rounds: %s", res.String()))
	}

	var result struct {
		Deleted int `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err == nil && result.Deleted != removed {
		r.logger.Warn("Pruned %d rounds from storage but %d from index %s", removed, result.Deleted, r.index)
	}

	return removed, nil
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}
