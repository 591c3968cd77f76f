package content

// binarySampleSize is the number of bytes scanned for null bytes when
// detecting binary content. Matches Git's long-standing heuristic.
const binarySampleSize = 8000

// IsBinaryContent checks if content bytes contain binary data by looking for
// null bytes. UTF-16 and UTF-32 BOMs are exempted to avoid false positives.
func IsBinaryContent(content []byte) bool {
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return false // UTF-16 BOM
		}
	}
	if len(content) >= 4 {
		if (content[0] == 0xFF && content[1] == 0xFE && content[2] == 0x00 && content[3] == 0x00) ||
			(content[0] == 0x00 && content[1] == 0x00 && content[2] == 0xFE && content[3] == 0xFF) {
			return false // UTF-32 BOM
		}
	}

	sampleSize := min(len(content), binarySampleSize)
	for i := 0; i < sampleSize; i++ {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
