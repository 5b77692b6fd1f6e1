package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultBaseURL = "https://ncrdb.usga.org"
	defaultTimeout = 15 * time.Second
	maxRetries     = 2

	userAgent = "teesheet-extract/1.0 (github.com/pfrederiksen/teesheet-extract)"
)

// DirectoryClient queries a public course directory for location data.
// No authentication required.
type DirectoryClient struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewDirectoryClient creates a client against the default directory.
func NewDirectoryClient() *DirectoryClient {
	return &DirectoryClient{
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
	}
}

// directoryCourse is one entry in a directory search response.
type directoryCourse struct {
	FacilityName string `json:"facilityName"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

type searchResponse struct {
	Data []directoryCourse `json:"data"`
}

// Structured returns the strategy that queries the directory's structured
// search endpoint with both course name and state.
func (c *DirectoryClient) Structured() Strategy {
	return structuredStrategy{c}
}

// NameOnly returns the simplified fallback strategy that searches by course
// name alone and filters results by state afterwards.
func (c *DirectoryClient) NameOnly() Strategy {
	return nameOnlyStrategy{c}
}

type structuredStrategy struct {
	client *DirectoryClient
}

func (s structuredStrategy) Name() string { return "structured" }

func (s structuredStrategy) Lookup(ctx context.Context, course, state string) (*Location, error) {
	form := url.Values{}
	form.Set("courseName", course)
	form.Set("state", state)
	form.Set("country", "USA")

	result, err := s.client.postForm(ctx, "/NCRListing?handler=LoadCourses", form)
	if err != nil {
		return nil, fmt.Errorf("structured search: %w", err)
	}

	return bestMatch(result.Data, course, state), nil
}

type nameOnlyStrategy struct {
	client *DirectoryClient
}

func (s nameOnlyStrategy) Name() string { return "name-only" }

func (s nameOnlyStrategy) Lookup(ctx context.Context, course, state string) (*Location, error) {
	// Search on the normalized name; suffixes like "Country Club" often
	// differ between the tee sheet and the directory listing.
	form := url.Values{}
	form.Set("courseName", normalizeCourse(course))

	result, err := s.client.postForm(ctx, "/NCRListing?handler=LoadCourses", form)
	if err != nil {
		return nil, fmt.Errorf("name search: %w", err)
	}

	return bestMatch(result.Data, course, state), nil
}

// postForm executes a form POST with retry. Transport failures and 5xx
// responses are retried with exponential backoff; 4xx responses are
// permanent.
func (c *DirectoryClient) postForm(ctx context.Context, endpoint string, form url.Values) (*searchResponse, error) {
	var result searchResponse

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.BaseURL+endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("User-Agent", c.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("directory request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to decode
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return backoff.Permanent(fmt.Errorf("directory returned status %d", resp.StatusCode))
		default:
			return fmt.Errorf("directory returned status %d", resp.StatusCode)
		}

		result = searchResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return backoff.Permanent(fmt.Errorf("parsing response: %w", err))
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, err
	}

	return &result, nil
}

// bestMatch picks a result in passes: exact normalized name with matching
// state, partial name with matching state, then any result in the right
// state. With no state to filter on, the first result wins. No match at all
// is a clean miss.
func bestMatch(courses []directoryCourse, searchName, searchState string) *Location {
	if len(courses) == 0 {
		return nil
	}

	nameNorm := normalizeCourse(searchName)
	stateNorm := strings.ToUpper(strings.TrimSpace(searchState))

	if stateNorm == "" {
		return locationOf(courses[0])
	}

	for i := range courses {
		if normalizeCourse(courses[i].FacilityName) == nameNorm &&
			strings.EqualFold(courses[i].State, stateNorm) {
			return locationOf(courses[i])
		}
	}

	for i := range courses {
		if strings.Contains(normalizeCourse(courses[i].FacilityName), nameNorm) &&
			strings.EqualFold(courses[i].State, stateNorm) {
			return locationOf(courses[i])
		}
	}

	for i := range courses {
		if strings.EqualFold(courses[i].State, stateNorm) {
			return locationOf(courses[i])
		}
	}

	return nil
}

func locationOf(c directoryCourse) *Location {
	return &Location{
		City:  strings.TrimSpace(c.City),
		State: strings.ToUpper(strings.TrimSpace(c.State)),
		Zip:   strings.TrimSpace(c.Zip),
	}
}
