// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLab = `0.0	1.393	N
1.393	3.204	C:maj
# comment
3.204	5.5	A:min

5.5 7 F:maj
`

func TestReadLab(t *testing.T) {
	tl, err := ReadLab(strings.NewReader(sampleLab))
	require.NoError(t, err)

	assert.Equal(t, Timeline{
		{Start: 0, End: 1.393, Label: "N"},
		{Start: 1.393, End: 3.204, Label: "C:maj"},
		{Start: 3.204, End: 5.5, Label: "A:min"},
		{Start: 5.5, End: 7, Label: "F:maj"},
	}, tl)
}

func TestReadLabMalformed(t *testing.T) {
	for _, input := range []string{
		"0.0\t1.0\n",
		"0.0\t1.0\tC:maj\textra\n",
		"zero\t1.0\tC:maj\n",
		"0.0\tone\tC:maj\n",
		"2.0\t1.0\tC:maj\n",
		"-1\t1.0\tC:maj\n",
		"1.5\t1.5\tC:maj\n",
		"NaN\t1.0\tC:maj\n",
		"0\tNaN\tC:maj\n",
		"0\t+Inf\tC:maj\n",
	} {
		_, err := ReadLab(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedLab, input)
	}
}

func TestWriteLabRoundTrip(t *testing.T) {
	tl := Timeline{
		{Start: 0, End: 0.1, Label: "N"},
		{Start: 0.1, End: 2.123456789, Label: "G:min"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLab(&buf, tl))
	assert.Equal(t, "0\t0.1\tN\n0.1\t2.123456789\tG:min\n", buf.String())

	back, err := ReadLab(&buf)
	require.NoError(t, err)
	assert.Equal(t, tl, back)
}

func TestLabRecognizer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "piano.lab"), []byte(sampleLab), 0o644))

	tl, err := LabRecognizer{}.Recognize(context.Background(), filepath.Join(dir, "piano.wav"))
	require.NoError(t, err)
	assert.Len(t, tl, 4)

	explicit := LabRecognizer{Path: filepath.Join(dir, "piano.lab")}
	tl, err = explicit.Recognize(context.Background(), "/elsewhere/mix.wav")
	require.NoError(t, err)
	assert.Len(t, tl, 4)

	_, err = LabRecognizer{}.Recognize(context.Background(), filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = explicit.Recognize(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
