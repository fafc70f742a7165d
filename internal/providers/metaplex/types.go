package metaplex

import (
	"encoding/json"
	"fmt"
	"strings"
)

// File is an entry of a Metaplex metadata properties.files list.
// Entries come in two shapes: a bare URL string, or a {uri, type} object.
type File struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
	// Bare is true when the entry was a plain URL string, in which case
	// Type is empty
	Bare bool `json:"-"`
}

// UnmarshalJSON accepts both the bare-string and the object file entry shapes
func (f *File) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var uri string
		if err := json.Unmarshal(data, &uri); err != nil {
			return err
		}
		f.URI = uri
		f.Type = ""
		f.Bare = true
		return nil
	}

	type fileObject struct {
		URI  string `json:"uri"`
		Type string `json:"type"`
	}
	var obj fileObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("file entry is neither a string nor an object: %w", err)
	}
	f.URI = obj.URI
	f.Type = obj.Type
	f.Bare = false
	return nil
}

// Creator is an original creator of an NFT
type Creator struct {
	Address string `json:"address"`
	Share   int    `json:"share"`
}

// Properties holds the Metaplex metadata properties block
type Properties struct {
	Files    []File    `json:"files"`
	Category string    `json:"category"`
	Creators []Creator `json:"creators"`
}

// FileWithTypeContaining returns the first object file entry whose declared
// type contains the given substring, or nil
func (p *Properties) FileWithTypeContaining(substr string) *File {
	for i := range p.Files {
		f := &p.Files[i]
		if !f.Bare && strings.Contains(f.Type, substr) {
			return f
		}
	}
	return nil
}

// FileWithType returns the first object file entry with the exact declared
// type, or nil
func (p *Properties) FileWithType(fileType string) *File {
	for i := range p.Files {
		f := &p.Files[i]
		if !f.Bare && f.Type == fileType {
			return f
		}
	}
	return nil
}

// BareFileWithPrefix returns the URL of the first bare-string file entry
// starting with the given prefix, or nil
func (p *Properties) BareFileWithPrefix(prefix string) *string {
	for i := range p.Files {
		f := &p.Files[i]
		if f.Bare && strings.HasPrefix(f.URI, prefix) {
			return &f.URI
		}
	}
	return nil
}

// PositionalFileURL returns the URL of the conventional media entry: the
// sole entry when the list has exactly one, otherwise the second entry.
// Lists with a second entry conventionally put a thumbnail first.
func (p *Properties) PositionalFileURL() *string {
	switch len(p.Files) {
	case 0:
		return nil
	case 1:
		return &p.Files[0].URI
	default:
		return &p.Files[1].URI
	}
}

// FileURLs returns every file entry URL in order
func (p *Properties) FileURLs() []*string {
	urls := make([]*string, 0, len(p.Files))
	for i := range p.Files {
		urls = append(urls, &p.Files[i].URI)
	}
	return urls
}

// NFT represents a raw Metaplex NFT metadata record
type NFT struct {
	Symbol       string     `json:"symbol"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Image        string     `json:"image"`
	AnimationURL *string    `json:"animation_url"`
	ExternalURL  *string    `json:"external_url"`
	Properties   Properties `json:"properties"`
}

// HasCreator reports whether the given wallet address is among the NFT's
// original creators
func (n *NFT) HasCreator(address string) bool {
	for _, creator := range n.Properties.Creators {
		if creator.Address == address {
			return true
		}
	}
	return false
}

// tokenAccount is a token account entry returned by the accounts endpoint.
// Data is the base64-encoded on-chain metadata account data.
type tokenAccount struct {
	Data string `json:"data"`
}

// accountsResponse is the response from the accounts-by-owner endpoint
type accountsResponse struct {
	Accounts []tokenAccount `json:"accounts"`
}
