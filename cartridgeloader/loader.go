// This file is part of JollyCV-Core.
//
// JollyCV-Core is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// JollyCV-Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with JollyCV-Core.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"

	"github.com/OpenEmu/JollyCV-Core/curated"
)

// Loader fetches a single file's raw bytes, from either the local
// filesystem or an HTTP(S) URL, and records its SHA1 hash.
type Loader struct {
	// Filename to load. An HTTP or HTTPS URL is fetched over the network;
	// anything else is treated as a local path.
	Filename string

	// Hash is the expected SHA1 hash of the loaded data, as a lowercase hex
	// string. An empty string skips the check. After a successful Load the
	// field holds the hash of whatever was actually loaded.
	Hash string

	// Data holds the loaded bytes after a successful Load.
	Data []byte
}

// HasLoaded reports whether Load has already populated Data.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load fetches Filename's contents into Data, computes its SHA1 hash, and
// fails if Hash was set to something else. Calling Load on an
// already-loaded Loader is a no-op.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
	case "file", "":
		data, err = loadFile(cl.Filename)
	default:
		return curated.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: unexpected hash value for %s", cl.Filename)
	}

	cl.Data = data
	cl.Hash = hash
	return nil
}

func loadHTTP(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return data, nil
}

func loadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer f.Close()

	fi, err := os.Stat(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	data := make([]byte, fi.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return data, nil
}
