package seo

import (
	"fmt"
	"strings"
)

func (r OutlineRequest) Validate() error {
	if strings.TrimSpace(r.Keywords) == "" {
		return fmt.Errorf("%w: keywords are required", ErrInvalidInput)
	}
	if len(r.CompetitorURLs) == 0 {
		return fmt.Errorf("%w: at least one competitor url is required", ErrInvalidInput)
	}
	return nil
}

func (r DraftAnalysisRequest) Validate() error {
	if strings.TrimSpace(r.Keywords) == "" {
		return fmt.Errorf("%w: keywords are required", ErrInvalidInput)
	}
	return nil
}

func (o *ArticleOutline) Validate() error {
	for i, node := range o.Structure {
		if !node.Level.Valid() {
			return fmt.Errorf("%w: structure[%d].level %q is not H2 or H3", ErrSchemaViolation, i, node.Level)
		}
	}
	if o.ImageStrategy.TotalImages < 0 {
		return fmt.Errorf("%w: imageStrategy.totalImages is negative (%d)", ErrSchemaViolation, o.ImageStrategy.TotalImages)
	}
	return nil
}

func (a *DraftAnalysis) Validate() error {
	if a.Score < 0 || a.Score > 100 {
		return fmt.Errorf("%w: score %v outside [0,100]", ErrSchemaViolation, a.Score)
	}
	return nil
}
