package cinehoyts

import (
	"context"

	"cinemashowings/internal/adapters/upstream"
	"cinemashowings/internal/domain"
)

const nowPlayingPath = "/Cartelera.aspx/GetNowPlayingByCity"

type cinehoytsHTTPFetcher struct {
	client *upstream.Client
}

// NewHTTPFetcher returns a fetcher that calls the Cinehoyts now-playing endpoint.
func NewHTTPFetcher(client *upstream.Client) domain.CinehoytsFetcher {
	return &cinehoytsHTTPFetcher{client: client}
}

func (f *cinehoytsHTTPFetcher) FetchZone(ctx context.Context, zoneID string) (domain.CinehoytsResponse, error) {
	var data domain.CinehoytsResponse
	req := domain.CinehoytsRequest{CityKey: zoneID, VIP: true}
	if err := f.client.PostJSON(ctx, nowPlayingPath, req, &data); err != nil {
		return domain.CinehoytsResponse{}, err
	}
	return data, nil
}
