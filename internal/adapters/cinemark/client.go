package cinemark

import (
	"context"
	"net/url"

	"cinemashowings/internal/adapters/upstream"
	"cinemashowings/internal/domain"
)

type cinemarkHTTPFetcher struct {
	client *upstream.Client
}

// NewHTTPFetcher returns a fetcher that calls the Cinemark billboard API.
func NewHTTPFetcher(client *upstream.Client) domain.CinemarkFetcher {
	return &cinemarkHTTPFetcher{client: client}
}

func (f *cinemarkHTTPFetcher) FetchBillboard(ctx context.Context, cinemaID string) (domain.CinemarkResponse, error) {
	var data domain.CinemarkResponse
	path := "/vista/data/billboard?cinema_id=" + url.QueryEscape(cinemaID)
	if err := f.client.GetJSON(ctx, path, &data); err != nil {
		return nil, err
	}
	return data, nil
}
