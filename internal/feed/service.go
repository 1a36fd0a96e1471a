package feed

import (
	"context"
	"log/slog"

	"github.com/beevik/etree"
)

// Service runs the full pipeline: one network fetch followed by a purely
// in-memory transform. It holds no state across calls.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates the feed orchestrator.
func NewService(client *Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Client exposes the underlying fetch client.
func (s *Service) Client() *Client { return s.client }

// LiveMatches fetches the feed and returns one Match per distinct
// datapath, in order of first appearance in the document.
func (s *Service) LiveMatches(ctx context.Context) ([]Match, error) {
	body, err := s.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := ParseFeed(body)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("feed parsed", "matches", len(matches))
	return matches, nil
}

// ParseFeed normalizes a raw feed document. The provider duplicates
// matches with slightly different info sometimes; duplicates are folded by
// datapath. A malformed match aborts the whole document rather than
// returning a partial list.
func ParseFeed(data []byte) ([]Match, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Field: "document", Msg: "malformed feed XML", Err: err}
	}

	groups, err := groupBy("datapath", doc.FindElements("//match"))
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(groups))
	for _, group := range groups {
		m, err := mergeGroup(group)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}
