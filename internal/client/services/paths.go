package services

import (
	"net/url"
	"strconv"
)

func itemPath(resource string, id int64) string {
	return resource + "/" + url.PathEscape(strconv.FormatInt(id, 10))
}
