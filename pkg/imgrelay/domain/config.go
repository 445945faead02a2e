package domain

// A list of built-in config keys supported by the pipeline (settings of the HTTP layer live in pkg/common).

const (
	// ConfigKeyScrapingURL the page which contains the <img> tag with the embedded image
	ConfigKeyScrapingURL = "scrapingURL"
	// ConfigKeyInferenceURL the vision model endpoint (OpenAI-like chat completions)
	ConfigKeyInferenceURL = "inferenceURL"
	// ConfigKeyInferenceToken the bearer credential for the inference endpoint
	ConfigKeyInferenceToken = "inferenceToken"
	// ConfigKeyValidationURL where the inference result is submitted to
	ConfigKeyValidationURL = "validationURL"
	// ConfigKeyValidationToken the bearer credential for the validation endpoint. Falls back to ConfigKeyInferenceToken.
	ConfigKeyValidationToken = "validationToken"
	// ConfigKeyModel the model identifier sent with the payload
	ConfigKeyModel = "model"
	// ConfigKeyPrompt the text block sent along with the image
	ConfigKeyPrompt = "prompt"
	// ConfigKeyImagePath file name of the saved image (for inspection only, never read back)
	ConfigKeyImagePath = "imagePath"
	// ConfigKeyImageDirectory the directory ConfigKeyImagePath is resolved against if it's relative
	ConfigKeyImageDirectory = "imageDirectory"
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyLogLevel one of "debug", "info", "warn", "error"
	ConfigKeyLogLevel = "logLevel"
	// ConfigKeyDebug same as the -debug flag: forces the "debug" log level
	ConfigKeyDebug = "debug"
)

const (
	DefaultModel     = "microsoft-florence-2-large"
	DefaultPrompt    = "<DETAILED_CAPTION>"
	DefaultImagePath = "scraped_image" // the extension follows the media type
)
