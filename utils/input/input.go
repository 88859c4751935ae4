package input

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/tsinghua-fib-lab/lifesim-oss/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/yaml.v2"
)

var (
	ErrNoConfig          = errors.New("input: config file or config data must be specified")
	ErrIncompleteInput   = errors.New("input: uri, db, col and name are required")
	ErrScenarioNotFound  = errors.New("input: scenario not found")
	ErrScenarioNotCached = errors.New("input: scenario not in cache")
)

// scenarioDocument MongoDB中的场景文档
type scenarioDocument struct {
	Name            string `bson:"name"`
	config.Scenario `bson:",inline"`
}

// Init 读取配置
// 功能：从文件或Base64数据中读取YAML配置，并按需从MongoDB加载场景
// 参数：ctx-上下文，path-配置文件路径，data-Base64编码的配置，cacheDir-场景缓存目录（为空则禁用缓存）
// 返回：配置或错误
// 算法说明：
// 1. 文件路径优先，其次是Base64数据，都为空则报错
// 2. 使用严格模式解析YAML，未知字段视为错误
// 3. 如果配置了input，则从缓存或MongoDB读取场景并覆盖scenario
func Init(ctx context.Context, path string, data string, cacheDir string) (c config.Config, err error) {
	var file []byte
	switch {
	case path != "":
		file, err = os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config file load err: %w", err)
		}
	case data != "":
		file, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return c, fmt.Errorf("config data load err: %w", err)
		}
	default:
		return c, ErrNoConfig
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		return c, fmt.Errorf("config parse err: %w", err)
	}
	if c.Input != nil {
		s, err := LoadScenario(ctx, *c.Input, cacheDir)
		if err != nil {
			return c, err
		}
		c.Scenario = s
	}
	return c, nil
}

// LoadScenario 加载场景
// 功能：优先从缓存读取场景，缓存不存在时从MongoDB下载并写入缓存
// 参数：ctx-上下文，p-场景位置，cacheDir-缓存目录
// 返回：场景或错误
func LoadScenario(ctx context.Context, p config.InputPath, cacheDir string) (config.Scenario, error) {
	if p.DB == "" || p.Col == "" || p.Name == "" || (p.URI == "" && !p.OnlyCache) {
		return config.Scenario{}, ErrIncompleteInput
	}
	useCache := preCheckCache(cacheDir)
	var cachePath string
	if useCache {
		cachePath = filepath.Join(cacheDir, p.GetCachePath())
		if s, err := readCache(cachePath); err == nil {
			log.Infof("load scenario %s from cache %s", p.Name, cachePath)
			return s, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Warnf("ignore broken cache %s: %v", cachePath, err)
		}
	}
	if p.OnlyCache {
		return config.Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotCached, p.GetCachePath())
	}

	log.Infof("start fetching scenario %s from %s.%s", p.Name, p.DB, p.Col)
	s, err := download(ctx, p)
	if err != nil {
		return config.Scenario{}, err
	}
	log.Infof("finish fetching scenario %s from %s.%s", p.Name, p.DB, p.Col)

	if useCache {
		if err := writeCache(cachePath, s); err != nil {
			log.Warnf("failed to write cache %s: %v", cachePath, err)
		}
	}
	return s, nil
}

func download(ctx context.Context, p config.InputPath) (config.Scenario, error) {
	client := mongoutil.NewClient(p.URI)
	defer client.Disconnect(context.Background())

	coll := mongoutil.GetMongoColl(client, p)
	var doc scenarioDocument
	err := coll.FindOne(ctx, bson.M{"name": p.Name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return config.Scenario{}, fmt.Errorf("%w: %s in %s.%s", ErrScenarioNotFound, p.Name, p.DB, p.Col)
	}
	if err != nil {
		return config.Scenario{}, fmt.Errorf("failed to download scenario %s: %w", p.Name, err)
	}
	return doc.Scenario, nil
}

func readCache(path string) (s config.Scenario, err error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	err = yaml.UnmarshalStrict(file, &s)
	return s, err
}

func writeCache(path string, s config.Scenario) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
