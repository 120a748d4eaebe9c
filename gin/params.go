package gin

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func queryBool(key string, c *gin.Context) (bool, bool, error) {
	v := c.Query(key)
	if v == "" {
		return false, false, nil
	}

	b, err := strconv.ParseBool(v)
	return b, true, err
}

func queryInt(key string, c *gin.Context) (int, bool, error) {
	v := c.Query(key)
	if v == "" {
		return 0, false, nil
	}

	i, err := strconv.Atoi(v)
	return i, true, err
}

// splitKeywords normalizes the comma-joined keyword form clients send into
// a clean list. This is the single place where that shape is adapted.
func splitKeywords(joined string) []string {
	var keywords []string
	for _, kw := range strings.Split(joined, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
