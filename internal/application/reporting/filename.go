package reporting

import (
	"fmt"
	"strings"
	"time"
)

// ScopeFilename <TAG>_STATEMENT_<SCOPE>_<ms>.pdf o <TAG>_REPORT_<SCOPE>_<ms>.xlsx.
func ScopeFilename(orgTag string, scope Scope, format Format, at time.Time) string {
	kind := "STATEMENT"
	if format == FormatXLSX {
		kind = "REPORT"
	}
	return fmt.Sprintf("%s_%s_%s_%d.%s", orgTag, kind, scope.Tag(), at.UnixMilli(), format)
}

// CustomerFilename <TAG>_STMT_<NOMBRE_CON_GUIONES_BAJOS>.<ext>.
func CustomerFilename(orgTag, customerName string, format Format) string {
	name := strings.Join(strings.Fields(strings.ToUpper(customerName)), "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf("%s_STMT_%s.%s", orgTag, name, format)
}

// ContentType content type del formato.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return ContentTypeXLSX
	}
	return ContentTypePDF
}
