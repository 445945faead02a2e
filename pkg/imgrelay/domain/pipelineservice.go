package domain

import (
	"context"
	"fmt"

	"kgeyst.com/imgrelay/pkg/common"
)

// PipelineService is the main orchestrator: fetch -> extract -> save -> build -> infer -> submit. Stages run
// strictly one after another, and the first failure stops the run: nothing is retried or rolled back.
type PipelineService struct {
	pageFetcher     PageFetcher
	imageExtractor  ImageExtractor
	imageSaver      ImageSaver
	inferenceClient InferenceClient
	submitter       Submitter
	scrapingURL     string
	model           string
	prompt          string
	logger          common.Logger
}

func NewPipelineService(
	pageFetcher PageFetcher,
	imageExtractor ImageExtractor,
	imageSaver ImageSaver,
	inferenceClient InferenceClient,
	submitter Submitter,
	config *common.Config,
	logger common.Logger,
) *PipelineService {
	return &PipelineService{
		pageFetcher:     pageFetcher,
		imageExtractor:  imageExtractor,
		imageSaver:      imageSaver,
		inferenceClient: inferenceClient,
		submitter:       submitter,
		scrapingURL:     config.GetString(ConfigKeyScrapingURL),
		model:           config.GetStringOrDefault(ConfigKeyModel, DefaultModel),
		prompt:          config.GetStringOrDefault(ConfigKeyPrompt, DefaultPrompt),
		logger:          logger,
	}
}

// Run executes the whole pipeline once. A returned error is always a *StageError.
func (p *PipelineService) Run(ctx context.Context) error {
	p.logger.Log(fmt.Sprintf("fetching %s", p.scrapingURL))
	html, err := p.pageFetcher.FetchPage(ctx, p.scrapingURL)
	if err != nil {
		return &StageError{Stage: StageFetch, Err: err}
	}
	image, err := p.imageExtractor.ExtractImage(html)
	if err != nil {
		return &StageError{Stage: StageExtract, Err: err}
	}
	p.logger.Log(fmt.Sprintf("found a %s image (%d base64 characters)", image.MimeType, len(image.Payload)))
	path, err := p.imageSaver.SaveImage(image)
	if err != nil {
		return &StageError{Stage: StageSave, Err: err}
	}
	p.logger.Log(fmt.Sprintf("image saved as %s", path))
	payload := NewInferencePayload(p.model, p.prompt, image)
	p.logger.Log(fmt.Sprintf("sending the image for inference (model %s)", p.model))
	response, err := p.inferenceClient.Infer(ctx, payload)
	if err != nil {
		return &StageError{Stage: StageInfer, Err: err}
	}
	p.logger.Log("inference received, submitting the response")
	err = p.submitter.Submit(ctx, response)
	if err != nil {
		return &StageError{Stage: StageSubmit, Err: err}
	}
	p.logger.Log("submitted successfully")
	return nil
}
