package kod

import (
	"flag"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kod/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden tokenizes every fixture and compares the rendered token
// stream, followed by any error, with the matching .golden file.
func TestGolden(t *testing.T) {
	files, err := testutil.Sources()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := path.Base(file)
		t.Run(name, func(t *testing.T) {
			src, err := testutil.ReadTestData(name)
			require.NoError(t, err)

			logger, _ := test.NewNullLogger()
			toks, err := Tokenize(src, name, Logger(logger), ContinueOnError())

			var b strings.Builder
			for _, tok := range toks {
				b.WriteString(tok.String())
				b.WriteByte('\n')
			}
			if err != nil {
				b.WriteString("error: " + err.Error() + "\n")
			}
			actual := b.String()

			goldenName := strings.TrimSuffix(name, ".kod") + ".golden"
			if *update {
				goldenFile := filepath.Join("internal", "testutil", "testdata", goldenName)
				err := os.WriteFile(goldenFile, []byte(actual), 0o644)
				require.NoError(t, err)
				return
			}

			expected, err := testutil.ReadTestData(goldenName)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), actual, "Token stream does not match golden file.")
		})
	}
}
