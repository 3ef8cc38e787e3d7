package render

import (
	"io/fs"
	"net/url"
	"path"
	"strings"
)

// ImageResolver turns an image reference from front matter into a URL the
// page can display.
type ImageResolver interface {
	Resolve(ref string) (string, bool)
}

// StaticResolver resolves image references against the site's static
// directory. Bare names live under ImageDir; rooted paths are taken relative
// to the static root. http(s) URLs pass through without being fetched.
type StaticResolver struct {
	fsys     fs.FS
	imageDir string
	baseURL  string
}

func NewStaticResolver(fsys fs.FS, imageDir, baseURL string) *StaticResolver {
	return &StaticResolver{fsys: fsys, imageDir: imageDir, baseURL: baseURL}
}

func (r *StaticResolver) Resolve(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if isRemote(ref) {
		return ref, true
	}
	if r.fsys == nil {
		return "", false
	}

	var p string
	if strings.HasPrefix(ref, "/") {
		p = strings.TrimPrefix(path.Clean(ref), "/")
	} else {
		p = path.Join(r.imageDir, ref)
	}
	if !fs.ValidPath(p) || p == "." {
		return "", false
	}
	info, err := fs.Stat(r.fsys, p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return joinURL(r.baseURL, "/"+p), true
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
