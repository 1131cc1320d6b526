package collector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSeries reads integers separated by whitespace and/or commas.
func ParseSeries(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	var series []int
	token := 0
	for sc.Scan() {
		for _, field := range strings.Split(sc.Text(), ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("token %d %q: %w", token, field, err)
			}
			series = append(series, v)
			token++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	return series, nil
}
