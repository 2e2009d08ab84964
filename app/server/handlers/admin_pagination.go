package handlers

import (
	"errors"
	"math"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var errPageOutOfRange = errors.New("page out of range")

// parsePagination 把 page (从 1 开始) 和 limit 映射为 (是否展示全部, 从 0 开始的页码, 每页数量)
func (a *App) parsePagination(page *uint, limit *uint) (bool, int, int, error) {
	if page != nil && *page == 0 && limit != nil && *limit == 0 {
		// 特殊参数：展示全部
		return true, 0, -1, nil
	}

	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不超过上限
	parsedLimit := defaultPageLimit
	if limit != nil && *limit > 0 {
		parsedLimit = maxPageLimit
		if *limit < maxPageLimit {
			parsedLimit = int(*limit)
		}
	}

	parsedPage := 0
	if page != nil && *page > 1 {
		// 偏移量 page*limit 不能溢出
		if uint64(*page-1) > uint64(math.MaxInt/parsedLimit) {
			return false, 0, 0, errPageOutOfRange
		}
		parsedPage = int(*page - 1)
	}

	return false, parsedPage, parsedLimit, nil
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	}
	pageMax := count / int64(limit)
	if (count % int64(limit)) != 0 {
		pageMax++
	}
	return pageMax
}
