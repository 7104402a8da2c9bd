package librarian

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jonwraymond/standardslibrarian/registry"
)

const (
	resourceScheme = "standards://"
	resourceSuffix = "/pdf"
)

// resourceURI builds the canonical PDF resource URI for a standard id.
func resourceURI(id string) string {
	return resourceScheme + id + resourceSuffix
}

// listResources publishes each standard whose PDF exists on disk as an MCP
// resource.
func (s *Service) listResources(ctx context.Context) []registry.ResourceInfo {
	var resources []registry.ResourceInfo
	for _, std := range s.lib.Standards() {
		if _, ok := s.lib.PDFPath(std.ID); !ok {
			continue
		}
		resources = append(resources, registry.ResourceInfo{
			URI:         resourceURI(std.ID),
			Name:        fmt.Sprintf("%s (PDF)", std.ShortTitle),
			Description: std.Title,
			MIMEType:    "application/pdf",
		})
	}
	return resources
}

// readResource serves a PDF resource as a base64 blob.
func (s *Service) readResource(ctx context.Context, uri string) (registry.ResourceContents, bool) {
	if !strings.HasPrefix(uri, resourceScheme) || !strings.HasSuffix(uri, resourceSuffix) {
		return registry.ResourceContents{}, false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(uri, resourceScheme), resourceSuffix)

	path, ok := s.lib.PDFPath(id)
	if !ok {
		return registry.ResourceContents{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("read pdf resource",
			zap.String("uri", uri),
			zap.Error(err),
		)
		return registry.ResourceContents{}, false
	}

	return registry.ResourceContents{
		URI:      uri,
		MIMEType: "application/pdf",
		Blob:     base64.StdEncoding.EncodeToString(data),
	}, true
}
