package domain

import (
	"strings"
)

const (
	TypeMediaTypeOrExtent string = "dct:MediaTypeOrExtent"
	TypeMediaType         string = "dct:MediaType"

	FileTypeAuthority string = "http://publications.europa.eu/resource/authority/file-type/"
)

//Format is either a reference into the EU file-type authority table, or an
//opaque media type value that could not be mapped
type Format struct {
	ID    string `json:"@id,omitempty"`
	Type  string `json:"@type"`
	Value string `json:"@value,omitempty"`
}

var (
	FormatHTML  = fileType("HTML")
	FormatTarGz = fileType("TAR_GZ")
	FormatZip   = fileType("ZIP")
	FormatPDF   = fileType("PDF")
	FormatJSON  = fileType("JSON")
	FormatMP4   = fileType("MP4")
)

var knownFormats = map[string]Format{
	"text/html":          FormatHTML,
	"html":               FormatHTML,
	"application/x-tar":  FormatTarGz,
	"application/gzip":   FormatTarGz,
	"application/x-gtar": FormatTarGz,
	"tar.gz":             FormatTarGz,
	"application/zip":    FormatZip,
	"zip":                FormatZip,
	"application/pdf":    FormatPDF,
	"pdf":                FormatPDF,
	"application/json":   FormatJSON,
	"json":               FormatJSON,
	"video/mp4":          FormatMP4,
}

func fileType(code string) Format {
	return Format{ID: FileTypeAuthority + code, Type: TypeMediaTypeOrExtent}
}

//LookupFormat maps a raw format string into the file-type vocabulary. Strings
//that are not recognized are passed through as opaque media types.
func LookupFormat(raw string) Format {
	if f, ok := knownFormats[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return f
	}

	return Format{Type: TypeMediaType, Value: raw}
}
