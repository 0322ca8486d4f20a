// Package release resolves and downloads published releases from the
// public download server.
package release

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/net/html"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
)

// stablePattern matches the "stable -> x.y.z" symlink line some listing
// servers render as plain text.
var stablePattern = regexp.MustCompile(`stable\s*->\s*(\d+\.\d+(?:\.\d+)?)`)

// versionPattern matches a release version directory name. Pre-releases
// carry a suffix (beta, rc) and never match.
var versionPattern = regexp.MustCompile(`^(\d{4})\.(\d+)(?:\.(\d+))?$`)

// Fetcher implements ports.ReleaseSource against an HTTP release listing.
type Fetcher struct {
	baseURL string
	client  *http.Client
	logger  ports.Logger
}

// NewFetcher creates a Fetcher for the given releases base URL. The URL
// must end with a slash.
func NewFetcher(baseURL string, logger ports.Logger) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		client:  http.DefaultClient,
		logger:  logger,
	}
}

var _ ports.ReleaseSource = (*Fetcher)(nil)

// Latest resolves the newest stable release from the listing page. The
// stable symlink is authoritative; when it is absent the highest version
// directory wins. A listing that yields neither falls back to the pinned
// known-good version.
func (f *Fetcher) Latest(ctx context.Context) (domain.ReleaseInfo, error) {
	body, err := f.fetchListing(ctx)
	if err != nil {
		f.logger.Warn(fmt.Sprintf("release listing unreachable, using fallback version %s: %v",
			domain.FallbackVersion, err))
		return f.ForVersion(domain.FallbackVersion), nil
	}

	if m := stablePattern.FindStringSubmatch(body); m != nil {
		return f.ForVersion(m[1]), nil
	}

	if v := highestListedVersion(body); v != "" {
		return f.ForVersion(v), nil
	}

	f.logger.Warn(fmt.Sprintf("release listing yielded no versions, using fallback %s",
		domain.FallbackVersion))
	return f.ForVersion(domain.FallbackVersion), nil
}

// ForVersion returns the release info for a specific version.
func (f *Fetcher) ForVersion(version string) domain.ReleaseInfo {
	return domain.ReleaseInfo{
		Version: version,
		URL:     domain.ReleaseURL(f.baseURL, version),
	}
}

// Download fetches the release installer to dest.
func (f *Fetcher) Download(ctx context.Context, info domain.ReleaseInfo, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.URL, nil)
	if err != nil {
		return zerr.Wrap(err, "building download request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "downloading installer"), "url", info.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.New(fmt.Sprintf("installer download returned %d", resp.StatusCode)),
			"url", info.URL)
	}

	out, err := os.Create(dest) //nolint:gosec // dest is under the configured work dir
	if err != nil {
		return zerr.Wrap(err, "creating installer file")
	}

	written, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return zerr.Wrap(err, "writing installer file")
	}
	if written == 0 {
		return zerr.With(zerr.New("installer download was empty"), "url", info.URL)
	}

	f.logger.Info(fmt.Sprintf("installer %s downloaded (%d bytes)", info.Version, written))
	return nil
}

func (f *Fetcher) fetchListing(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return "", zerr.Wrap(err, "building listing request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", zerr.Wrap(err, "fetching release listing")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", zerr.New(fmt.Sprintf("release listing returned %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.Wrap(err, "reading release listing")
	}
	return string(body), nil
}

// highestListedVersion parses the listing as HTML and returns the highest
// stable version directory linked from it, or "" when none is found.
func highestListedVersion(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return ""
	}

	var versions []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				name := strings.Trim(attr.Val, "/")
				if versionPattern.MatchString(name) {
					versions = append(versions, name)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(versions) == 0 {
		return ""
	}
	sort.Slice(versions, func(i, j int) bool {
		return versionLess(versions[i], versions[j])
	})
	return versions[len(versions)-1]
}

func versionLess(a, b string) bool {
	pa := versionParts(a)
	pb := versionParts(b)
	for i := range pa {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var parts [3]int
	m := versionPattern.FindStringSubmatch(v)
	if m == nil {
		return parts
	}
	for i, s := range m[1:] {
		if s == "" {
			continue
		}
		n, _ := strconv.Atoi(s)
		parts[i] = n
	}
	return parts
}
