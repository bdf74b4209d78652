package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/lockoor/trial"
)

func sampleResults() []trial.Result {
	return []trial.Result{
		{
			Readers: 100, Writers: 5, Reads: 10000, Updates: 1,
			Times: map[string]int64{
				trial.SharedMutexKey:   1501,
				trial.StandardMutexKey: 3012,
			},
		},
		{
			Readers: 100, Writers: 5, Reads: 10000, Updates: 10,
			Times: map[string]int64{
				trial.SharedMutexKey:   1460,
				trial.StandardMutexKey: 2904,
			},
		},
	}
}

func TestGenerateTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, sampleResults()))

	want := strings.Join([]string{
		"+---------+---------+-------+---------+-------------------+---------------------+",
		"| Readers | Writers | Reads | Updates | Shared Mutex Time | Standard Mutex Time |",
		"+---------+---------+-------+---------+-------------------+---------------------+",
		"|     100 |       5 | 10000 |       1 |           1501 ms |             3012 ms |",
		"+---------+---------+-------+---------+-------------------+---------------------+",
		"|     100 |       5 | 10000 |      10 |           1460 ms |             2904 ms |",
		"+---------+---------+-------+---------+-------------------+---------------------+",
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}

func TestGenerateWidensForLargeValues(t *testing.T) {
	results := sampleResults()
	results[0].Times[trial.SharedMutexKey] = 123456789012345678

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, results))

	output := buf.String()

	assert.Contains(t, output, "| 123456789012345678 ms |")

	// Every line of the table must share one width.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for _, line := range lines {
		assert.Len(t, line, len(lines[0]))
	}
}

func TestGenerateMissingKeyRendersNA(t *testing.T) {
	results := sampleResults()
	delete(results[1].Times, trial.StandardMutexKey)

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, results))

	assert.Contains(t, buf.String(), "|                 N/A |")
}

func TestGenerateEmptyResults(t *testing.T) {
	var buf bytes.Buffer

	err := Generate(&buf, nil)
	require.Error(t, err)
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateJSON(&buf, sampleResults()))

	var decoded []trial.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded, 2)
	assert.Equal(t, 10000, decoded[0].Reads)
	assert.Equal(t, int64(1501), decoded[0].Times[trial.SharedMutexKey])
}
