package trie

import "encoding/binary"

// NodeRecordBytes is the fixed byte width of a packed node record.
//
// layout (big-endian):
//   - depth u8
//   - reserved[3]
//   - left u32 (tagged)
//   - right u32 (tagged)
//   - parent u32 (tagged, NoRef for the root)
const NodeRecordBytes = 16

// NodeRecordOffset returns the byte offset of node i in a packed store.
func NodeRecordOffset(i uint32) uint64 {
	return uint64(i) * NodeRecordBytes
}

// EncodeNodes packs nodes into dst for storage or interop with an external
// array-programming host. dst must be exactly len(nodes)*NodeRecordBytes.
func EncodeNodes(dst []byte, nodes []Node) error {
	if uint64(len(dst)) != uint64(len(nodes))*NodeRecordBytes {
		return ErrNodeStoreBadSize
	}
	for i, n := range nodes {
		off := NodeRecordOffset(uint32(i))
		rec := dst[off : off+NodeRecordBytes]
		rec[0] = n.Depth
		rec[1], rec[2], rec[3] = 0, 0, 0
		binary.BigEndian.PutUint32(rec[4:8], uint32(n.Left))
		binary.BigEndian.PutUint32(rec[8:12], uint32(n.Right))
		binary.BigEndian.PutUint32(rec[12:16], uint32(n.Parent))
	}
	return nil
}

// DecodeNodes unpacks a node store written by EncodeNodes.
func DecodeNodes(store []byte) ([]Node, error) {
	if len(store)%NodeRecordBytes != 0 {
		return nil, ErrNodeStoreBadSize
	}
	nodes := make([]Node, len(store)/NodeRecordBytes)
	for i := range nodes {
		off := NodeRecordOffset(uint32(i))
		rec := store[off : off+NodeRecordBytes]
		nodes[i] = Node{
			Depth:  rec[0],
			Left:   Ref(binary.BigEndian.Uint32(rec[4:8])),
			Right:  Ref(binary.BigEndian.Uint32(rec[8:12])),
			Parent: Ref(binary.BigEndian.Uint32(rec[12:16])),
		}
	}
	return nodes, nil
}
