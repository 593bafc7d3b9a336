package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// ChannelConfigStore maps a group id to its designated output channel.
// One entry per group, last write wins, rewritten in full on mutation.
type ChannelConfigStore struct {
	mu       sync.Mutex
	path     string
	channels map[string]string
}

// loadChannelConfig reads the config file. Missing or corrupt files yield
// an empty map.
func loadChannelConfig(path string) *ChannelConfigStore {
	store := &ChannelConfigStore{path: path, channels: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("Failed to read channel config %s: %v, starting empty", path, err)
		}
		return store
	}

	var channels map[string]string
	if err := json.Unmarshal(raw, &channels); err != nil {
		logWarn("Channel config %s is corrupt, starting empty: %v", path, err)
		return store
	}
	if channels != nil {
		store.channels = channels
	}
	return store
}

// Set records the channel for a group and rewrites the file.
func (c *ChannelConfigStore) Set(groupID, channelID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[groupID] = channelID

	data, err := json.MarshalIndent(c.channels, "", "  ")
	if err != nil {
		logWarn("Failed to marshal channel config: %v", err)
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logWarn("Failed to create config directory %s: %v", dir, err)
			return err
		}
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		logWarn("Failed to write channel config %s: %v", c.path, err)
		return err
	}
	return nil
}

// Get returns the channel for a group, if configured.
func (c *ChannelConfigStore) Get(groupID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	channelID, ok := c.channels[groupID]
	return channelID, ok
}
