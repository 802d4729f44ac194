package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/generator"
	"github.com/AnTengye/contratos/layout"
	"github.com/AnTengye/contratos/model"
	"github.com/AnTengye/contratos/pkg/logger"
)

const pdfContentType = "application/pdf"

// RenderedDocument is a contract PDF ready to download or upload
type RenderedDocument struct {
	Filename string
	Pages    int
	PDF      []byte
}

// DocumentService turns stored contracts into documents and PDFs
type DocumentService struct {
	repo    ContractRepository
	storage ObjectStorage
	engine  *layout.Engine
	opts    generator.Options
	loc     *time.Location
	now     func() time.Time
}

// NewDocumentService builds a service from the document section of the
// configuration. storage may be nil, in which case Publish is disabled.
func NewDocumentService(repo ContractRepository, storage ObjectStorage, cfg *config.DocumentConfig) *DocumentService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn(context.Background(), "unknown timezone, using UTC", "timezone", cfg.Timezone, "error", err)
		loc = time.UTC
	}
	return &DocumentService{
		repo:    repo,
		storage: storage,
		engine:  layout.NewEngine(LayoutConfig(cfg), nil),
		opts: generator.Options{
			AgencyName:    cfg.AgencyName,
			AgencyAddress: cfg.AgencyAddress,
			Jurisdiction:  cfg.Jurisdiction,
			DefaultCity:   cfg.DefaultCity,
		},
		loc: loc,
		now: time.Now,
	}
}

// LayoutConfig maps the document configuration onto page geometry
func LayoutConfig(cfg *config.DocumentConfig) layout.Config {
	return layout.Config{
		PageWidth:     cfg.PageWidth,
		PageHeight:    cfg.PageHeight,
		Margin:        cfg.Margin,
		LineHeight:    cfg.LineHeight,
		FontFamily:    cfg.FontFamily,
		FontSize:      cfg.FontSize,
		TitleFontSize: cfg.TitleFontSize,
	}.WithDefaults()
}

// SetClock replaces the time source used to date generated documents
func (s *DocumentService) SetClock(now func() time.Time) {
	s.now = now
}

// StorageEnabled reports whether Publish can upload
func (s *DocumentService) StorageEnabled() bool {
	return s.storage != nil
}

func (s *DocumentService) options() generator.Options {
	opts := s.opts
	opts.Today = s.now().In(s.loc)
	return opts
}

// Compose loads a contract and builds its document
func (s *DocumentService) Compose(ctx context.Context, id string) (*generator.Document, *model.ContractAggregate, error) {
	agg, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return generator.Compose(agg, s.options()), agg, nil
}

// Render lays out and encodes a stored contract as PDF
func (s *DocumentService) Render(ctx context.Context, id string) (*RenderedDocument, error) {
	doc, agg, err := s.Compose(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.RenderDocument(doc, agg)
}

// RenderDocument encodes an already composed document for agg
func (s *DocumentService) RenderDocument(doc *generator.Document, agg *model.ContractAggregate) (*RenderedDocument, error) {
	pages := s.engine.Layout(doc)
	var buf bytes.Buffer
	err := layout.Render(&buf, pages, s.engine.Config(), layout.Metadata{
		Title:     doc.Title,
		Subject:   generator.PropertyAddress(agg.Property),
		Creator:   "contratos",
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}
	return &RenderedDocument{
		Filename: generator.SuggestFilename(agg),
		Pages:    len(pages),
		PDF:      buf.Bytes(),
	}, nil
}

// Publish renders a contract, uploads the PDF and records where it lives
func (s *DocumentService) Publish(ctx context.Context, id string) (*model.GeneratedDocument, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	rendered, err := s.Render(ctx, id)
	if err != nil {
		return nil, err
	}

	objectName := ContractObjectName(id, rendered.Filename)
	size := int64(len(rendered.PDF))
	if err := s.storage.UploadFile(ctx, objectName, bytes.NewReader(rendered.PDF), size, pdfContentType); err != nil {
		return nil, fmt.Errorf("publish contract %s: %w", id, err)
	}
	url, err := s.storage.GetPresignedURL(ctx, objectName)
	if err != nil {
		s.discard(ctx, objectName)
		return nil, fmt.Errorf("publish contract %s: %w", id, err)
	}

	doc := model.GeneratedDocument{
		Filename:    rendered.Filename,
		ObjectName:  objectName,
		URL:         url,
		Pages:       rendered.Pages,
		Size:        size,
		GeneratedAt: s.now(),
	}
	if err := s.repo.RecordDocument(ctx, id, doc); err != nil {
		s.discard(ctx, objectName)
		return nil, err
	}
	logger.Info(logger.WithContractID(ctx, id), "contract published", "object", objectName, "pages", rendered.Pages)
	return &doc, nil
}

// discard removes an uploaded object that no contract record points to.
// Failures are logged only.
func (s *DocumentService) discard(ctx context.Context, objectName string) {
	if err := s.storage.DeleteFile(context.WithoutCancel(ctx), objectName); err != nil {
		logger.Warn(ctx, "failed to remove unrecorded document", "object", objectName, "error", err)
	}
}

// Withdraw removes the published PDF of a contract, if any. It is called
// before the contract itself is cancelled.
func (s *DocumentService) Withdraw(ctx context.Context, id string) error {
	if s.storage == nil {
		return nil
	}
	agg, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if agg.Document == nil || agg.Document.ObjectName == "" {
		return nil
	}
	if err := s.storage.DeleteFile(ctx, agg.Document.ObjectName); err != nil {
		return fmt.Errorf("withdraw contract %s: %w", id, err)
	}
	return nil
}

// Clause renders one standard clause of a stored contract, with and without
// its persisted override.
func (s *DocumentService) Clause(ctx context.Context, id string, n int) (text, generated string, err error) {
	agg, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	opts := s.options()
	return generator.RenderClause(n, agg, agg.ClauseOverrides, opts), generator.RenderClause(n, agg, nil, opts), nil
}
