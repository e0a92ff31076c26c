package native

// heapModule returns a module that defines and exports one memory named
// "memory" and nothing else. A zero maxPages leaves the memory unbounded
// up to the runtime limit.
func heapModule(minPages, maxPages uint32) []byte {
	var wasm []byte

	// Magic and version
	wasm = append(wasm, 0x00, 0x61, 0x73, 0x6d)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00)

	// Memory section
	var memSection []byte
	memSection = append(memSection, 0x01)
	if maxPages > 0 {
		memSection = append(memSection, 0x01)
		memSection = append(memSection, encodeULEB128(minPages)...)
		memSection = append(memSection, encodeULEB128(maxPages)...)
	} else {
		memSection = append(memSection, 0x00)
		memSection = append(memSection, encodeULEB128(minPages)...)
	}
	wasm = append(wasm, 0x05)
	wasm = append(wasm, encodeULEB128(uint32(len(memSection)))...)
	wasm = append(wasm, memSection...)

	// Export section
	const name = "memory"
	var exportSection []byte
	exportSection = append(exportSection, 0x01)
	exportSection = append(exportSection, encodeULEB128(uint32(len(name)))...)
	exportSection = append(exportSection, name...)
	exportSection = append(exportSection, 0x02, 0x00)
	wasm = append(wasm, 0x07)
	wasm = append(wasm, encodeULEB128(uint32(len(exportSection)))...)
	wasm = append(wasm, exportSection...)

	return wasm
}

func encodeULEB128(v uint32) []byte {
	var result []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		result = append(result, b)
		if v == 0 {
			break
		}
	}
	return result
}
