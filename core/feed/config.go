package feed

// Feed source kinds.
const (
	SourceHTTP = "http"
	SourceS3   = "s3"
)

// Config holds configuration for locating and parsing the remnants feed.
type Config struct {
	// Source selects where the archive comes from: "http" or "s3".
	Source string `mapstructure:"source" default:"http"`
	// URL is the archive location for the http source.
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`
	// Bucket is the bucket name for the s3 source.
	Bucket string `mapstructure:"bucket" default:""`
	// Object is the object key for the s3 source.
	Object string `mapstructure:"object" default:"ostatki.zip"`
	// Separator is the field delimiter of the sheet export.
	Separator string `mapstructure:"separator" default:";"`
	// HeaderSkip is the number of banner lines above the column header.
	HeaderSkip int `mapstructure:"header_skip" default:"17"`
	// CodeColumn is the header name of the vendor SKU column.
	CodeColumn string `mapstructure:"code_column" default:"Код"`
	// QuantityColumn is the header name of the stock count column.
	QuantityColumn string `mapstructure:"quantity_column" default:"Количество"`
	// PriceColumn is the header name of the price column.
	PriceColumn string `mapstructure:"price_column" default:"Цена"`
	// TimeoutSeconds bounds the archive download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
