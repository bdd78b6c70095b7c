package repository

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/youthlab/habitrack/pkg/entity"
)

// RemoteEntriesClient talks to the cloud entry store used for
// cross-device synchronization.
type RemoteEntriesClient struct {
	baseURL string
	client  *http.Client
}

func NewRemoteEntriesClient(baseURL string) *RemoteEntriesClient {
	return &RemoteEntriesClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (rc *RemoteEntriesClient) FetchEntries(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error) {
	url := rc.baseURL + "/users/" + uid.String() + "/entries" +
		"?from=" + from.Format("2006-01-02") + "&to=" + to.Format("2006-01-02")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New("building request error: " + err.Error())
	}
	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, errors.New("remote request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("remote responded with status " + strconv.Itoa(resp.StatusCode))
	}
	var entries []entity.HabitEntry
	err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&entries)
	if err != nil {
		return nil, errors.New("decoding remote response error: " + err.Error())
	}
	return entries, nil
}

func (rc *RemoteEntriesClient) PushEntries(ctx context.Context, entries []entity.HabitEntry) error {
	body, err := sonic.Marshal(entries)
	if err != nil {
		return errors.New("encoding entries error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rc.baseURL+"/entries", bytes.NewReader(body))
	if err != nil {
		return errors.New("building request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := rc.client.Do(req)
	if err != nil {
		return errors.New("remote request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("remote responded with status " + strconv.Itoa(resp.StatusCode))
	}
	return nil
}
